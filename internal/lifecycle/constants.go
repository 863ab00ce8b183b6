package lifecycle

// Fully qualified names of the framework base classes that anchor
// component classification. A target hierarchy may lack any of these
// (older API levels, no GCM dependency); an absent base simply never
// matches.
const (
	ApplicationClass           = "android.app.Application"
	ActivityClass              = "android.app.Activity"
	MapActivityClass           = "com.google.android.maps.MapActivity"
	ServiceClass               = "android.app.Service"
	FragmentClass              = "android.app.Fragment"
	SupportFragmentClass       = "android.support.v4.app.Fragment"
	AndroidXFragmentClass      = "androidx.fragment.app.Fragment"
	BroadcastReceiverClass     = "android.content.BroadcastReceiver"
	ContentProviderClass       = "android.content.ContentProvider"
	GCMBaseIntentServiceClass  = "com.google.android.gcm.GCMBaseIntentService"
	GCMListenerServiceClass    = "com.google.android.gms.gcm.GcmListenerService"
	ServiceConnectionInterface = "android.content.ServiceConnection"
)

// SignatureSet is a set of canonical method subsignatures.
type SignatureSet map[string]struct{}

func NewSignatureSet(subsigs ...string) SignatureSet {
	s := make(SignatureSet, len(subsigs))
	for _, sig := range subsigs {
		s[sig] = struct{}{}
	}
	return s
}

func (s SignatureSet) Contains(subsig string) bool {
	_, ok := s[subsig]
	return ok
}

func (s SignatureSet) Add(subsig string) {
	s[subsig] = struct{}{}
}

// MethodTables maps a component role to the subsignatures of its
// framework-invoked lifecycle methods. Roles without an entry
// (Application, Plain) never yield entry points.
type MethodTables map[ComponentType]SignatureSet

var applicationLifecycleMethods = []string{
	"void onCreate()",
	"void onLowMemory()",
	"void onTerminate()",
	"void onTrimMemory(int)",
}

var activityLifecycleMethods = []string{
	"void onCreate(android.os.Bundle)",
	"void onStart()",
	"void onRestoreInstanceState(android.os.Bundle)",
	"void onPostCreate(android.os.Bundle)",
	"void onResume()",
	"void onPostResume()",
	"java.lang.CharSequence onCreateDescription()",
	"void onSaveInstanceState(android.os.Bundle)",
	"void onPause()",
	"void onStop()",
	"void onRestart()",
	"void onDestroy()",
	"void onAttachedToWindow()",
	"void onDetachedFromWindow()",
}

var serviceLifecycleMethods = []string{
	"void onCreate()",
	"void onStart(android.content.Intent,int)",
	"int onStartCommand(android.content.Intent,int,int)",
	"android.os.IBinder onBind(android.content.Intent)",
	"void onRebind(android.content.Intent)",
	"boolean onUnbind(android.content.Intent)",
	"void onDestroy()",
}

var fragmentLifecycleMethods = []string{
	"void onAttach(android.app.Activity)",
	"void onAttach(android.content.Context)",
	"void onCreate(android.os.Bundle)",
	"android.view.View onCreateView(android.view.LayoutInflater,android.view.ViewGroup,android.os.Bundle)",
	"void onViewCreated(android.view.View,android.os.Bundle)",
	"void onActivityCreated(android.os.Bundle)",
	"void onViewStateRestored(android.os.Bundle)",
	"void onStart()",
	"void onResume()",
	"void onPause()",
	"void onStop()",
	"void onDestroyView()",
	"void onDestroy()",
	"void onDetach()",
	"void onSaveInstanceState(android.os.Bundle)",
}

var broadcastLifecycleMethods = []string{
	"void onReceive(android.content.Context,android.content.Intent)",
}

var contentProviderLifecycleMethods = []string{
	"boolean onCreate()",
}

var gcmIntentServiceMethods = []string{
	"void onDeletedMessages(android.content.Context,int)",
	"void onError(android.content.Context,java.lang.String)",
	"void onMessage(android.content.Context,android.content.Intent)",
	"boolean onRecoverableError(android.content.Context,java.lang.String)",
	"void onRegistered(android.content.Context,java.lang.String)",
	"void onUnregistered(android.content.Context,java.lang.String)",
}

var gcmListenerServiceMethods = []string{
	"void onDeletedMessages()",
	"void onMessageReceived(java.lang.String,android.os.Bundle)",
	"void onMessageSent(java.lang.String)",
	"void onSendError(java.lang.String,java.lang.String)",
}

var serviceConnectionMethods = []string{
	"void onServiceConnected(android.content.ComponentName,android.os.IBinder)",
	"void onServiceDisconnected(android.content.ComponentName)",
}

// DefaultMethodTables returns a fresh copy of the built-in lifecycle
// tables so callers can extend them without touching the defaults.
// Application is deliberately absent: the framework drives Application
// callbacks through a separate path, and its methods must not register
// as component entry points.
func DefaultMethodTables() MethodTables {
	return MethodTables{
		ComponentActivity:             NewSignatureSet(activityLifecycleMethods...),
		ComponentService:              NewSignatureSet(serviceLifecycleMethods...),
		ComponentFragment:             NewSignatureSet(fragmentLifecycleMethods...),
		ComponentBroadcastReceiver:    NewSignatureSet(broadcastLifecycleMethods...),
		ComponentContentProvider:      NewSignatureSet(contentProviderLifecycleMethods...),
		ComponentGCMBaseIntentService: NewSignatureSet(gcmIntentServiceMethods...),
		ComponentGCMListenerService:   NewSignatureSet(gcmListenerServiceMethods...),
		ComponentServiceConnection:    NewSignatureSet(serviceConnectionMethods...),
	}
}

// ApplicationLifecycleMethods exposes the Application callback set for
// reporting. It is not part of the entry-point tables.
func ApplicationLifecycleMethods() SignatureSet {
	return NewSignatureSet(applicationLifecycleMethods...)
}
