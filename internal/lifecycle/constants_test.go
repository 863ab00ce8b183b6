package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMethodTables_RoleCoverage(t *testing.T) {
	tables := DefaultMethodTables()

	withTable := []ComponentType{
		ComponentActivity, ComponentService, ComponentFragment,
		ComponentBroadcastReceiver, ComponentContentProvider,
		ComponentGCMBaseIntentService, ComponentGCMListenerService,
		ComponentServiceConnection,
	}
	for _, ctype := range withTable {
		assert.NotEmpty(t, tables[ctype], string(ctype))
	}

	_, hasApplication := tables[ComponentApplication]
	_, hasPlain := tables[ComponentPlain]
	assert.False(t, hasApplication, "Application must not carry an entry-point table")
	assert.False(t, hasPlain, "Plain must not carry an entry-point table")
}

func TestDefaultMethodTables_KnownSignatures(t *testing.T) {
	tables := DefaultMethodTables()

	assert.True(t, tables[ComponentActivity].Contains("void onCreate(android.os.Bundle)"))
	assert.True(t, tables[ComponentService].Contains("int onStartCommand(android.content.Intent,int,int)"))
	assert.True(t, tables[ComponentBroadcastReceiver].Contains("void onReceive(android.content.Context,android.content.Intent)"))
	assert.False(t, tables[ComponentService].Contains("void onCreate(android.os.Bundle)"))
}

func TestDefaultMethodTables_FreshCopies(t *testing.T) {
	a := DefaultMethodTables()
	a[ComponentActivity].Add("void vendorOnly()")

	b := DefaultMethodTables()
	assert.False(t, b[ComponentActivity].Contains("void vendorOnly()"),
		"mutating one copy must not leak into the defaults")
}
