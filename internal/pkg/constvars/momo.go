package constvars

// MoMo gateway constants. The result codes treated as success form a small
// fixed allowlist; everything else is a failure. The callback carries no
// signature, so authenticity of these codes is not verified here.
const (
	MomoRequestTypeCaptureWallet = "captureWallet"

	MomoResultCodeSuccess       = "0"
	MomoResultCodeSuccessPadded = "00"
	MomoResultCodeSuccessLong   = "000"
)

// MomoSuccessResultCodes is the allowlist checked against the callback's
// resultCode query parameter.
var MomoSuccessResultCodes = map[string]struct{}{
	MomoResultCodeSuccess:       {},
	MomoResultCodeSuccessPadded: {},
	MomoResultCodeSuccessLong:   {},
}
