package lifecycle

// ComponentType is the semantic role a class plays in the Android
// lifecycle model. Every class has exactly one; ComponentPlain is the
// fallback for classes the framework never calls into.
type ComponentType string

const (
	ComponentApplication          ComponentType = "Application"
	ComponentActivity             ComponentType = "Activity"
	ComponentService              ComponentType = "Service"
	ComponentFragment             ComponentType = "Fragment"
	ComponentBroadcastReceiver    ComponentType = "BroadcastReceiver"
	ComponentContentProvider      ComponentType = "ContentProvider"
	ComponentGCMBaseIntentService ComponentType = "GCMBaseIntentService"
	ComponentGCMListenerService   ComponentType = "GCMListenerService"
	ComponentServiceConnection    ComponentType = "ServiceConnection"
	ComponentPlain                ComponentType = "Plain"
)

// AllComponentTypes lists every role in classification precedence order,
// Plain last.
func AllComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentApplication,
		ComponentActivity,
		ComponentService,
		ComponentFragment,
		ComponentBroadcastReceiver,
		ComponentContentProvider,
		ComponentGCMBaseIntentService,
		ComponentGCMListenerService,
		ComponentServiceConnection,
		ComponentPlain,
	}
}
