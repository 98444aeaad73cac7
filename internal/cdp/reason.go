package cdp

import (
	"schemebridge/internal/neterror"

	"github.com/mafredri/cdp/protocol/network"
)

var errorReasons = map[neterror.Code]network.ErrorReason{
	neterror.ErrAborted:              network.ErrorReasonAborted,
	neterror.ErrTimedOut:             network.ErrorReasonTimedOut,
	neterror.ErrConnectionTimedOut:   network.ErrorReasonTimedOut,
	neterror.ErrAccessDenied:         network.ErrorReasonAccessDenied,
	neterror.ErrConnectionClosed:     network.ErrorReasonConnectionClosed,
	neterror.ErrConnectionReset:      network.ErrorReasonConnectionReset,
	neterror.ErrConnectionRefused:    network.ErrorReasonConnectionRefused,
	neterror.ErrConnectionAborted:    network.ErrorReasonConnectionAborted,
	neterror.ErrConnectionFailed:     network.ErrorReasonConnectionFailed,
	neterror.ErrNameNotResolved:      network.ErrorReasonNameNotResolved,
	neterror.ErrInternetDisconnected: network.ErrorReasonInternetDisconnected,
	neterror.ErrAddressUnreachable:   network.ErrorReasonAddressUnreachable,
	neterror.ErrBlockedByClient:      network.ErrorReasonBlockedByClient,
	neterror.ErrBlockedByResponse:    network.ErrorReasonBlockedByResponse,
}

// errorReason 将网络错误码映射为 Fetch.failRequest 的原因，无对应项时为 Failed
func errorReason(code neterror.Code) network.ErrorReason {
	if r, ok := errorReasons[code]; ok {
		return r
	}
	return network.ErrorReasonFailed
}
