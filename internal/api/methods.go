package api

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	LiftLog_Ping_FullMethodName:         true,
	LiftLog_Register_FullMethodName:     true,
	LiftLog_Login_FullMethodName:        true,
	LiftLog_RefreshToken_FullMethodName: true,
	LiftLog_Logout_FullMethodName:       true,
}
