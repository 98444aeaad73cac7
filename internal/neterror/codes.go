package neterror

// 网络错误码，与 Chromium net error 编号一致
const (
	NetOK                                        Code = 0
	ErrIOPending                                 Code = -1
	ErrFailed                                    Code = -2
	ErrAborted                                   Code = -3
	ErrInvalidArgument                           Code = -4
	ErrInvalidHandle                             Code = -5
	ErrFileNotFound                              Code = -6
	ErrTimedOut                                  Code = -7
	ErrFileTooLarge                              Code = -8
	ErrUnexpected                                Code = -9
	ErrAccessDenied                              Code = -10
	ErrNotImplemented                            Code = -11
	ErrInsufficientResources                     Code = -12
	ErrOutOfMemory                               Code = -13
	ErrUploadFileChanged                         Code = -14
	ErrSocketNotConnected                        Code = -15
	ErrFileExists                                Code = -16
	ErrFilePathTooLong                           Code = -17
	ErrFileNoSpace                               Code = -18
	ErrFileVirusInfected                         Code = -19
	ErrBlockedByClient                           Code = -20
	ErrNetworkChanged                            Code = -21
	ErrBlockedByAdministrator                    Code = -22
	ErrSocketConnected                           Code = -23
	ErrUploadStreamRewindNotSupported            Code = -25
	ErrContextShutDown                           Code = -26
	ErrBlockedByResponse                         Code = -27
	ErrCleartextNotPermitted                     Code = -29
	ErrBlockedByCSP                              Code = -30
	ErrH2OrQUICRequired                          Code = -31
	ErrBlockedByORB                              Code = -32
	ErrConnectionClosed                          Code = -100
	ErrConnectionReset                           Code = -101
	ErrConnectionRefused                         Code = -102
	ErrConnectionAborted                         Code = -103
	ErrConnectionFailed                          Code = -104
	ErrNameNotResolved                           Code = -105
	ErrInternetDisconnected                      Code = -106
	ErrSSLProtocolError                          Code = -107
	ErrAddressInvalid                            Code = -108
	ErrAddressUnreachable                        Code = -109
	ErrSSLClientAuthCertNeeded                   Code = -110
	ErrTunnelConnectionFailed                    Code = -111
	ErrNoSSLVersionsEnabled                      Code = -112
	ErrSSLVersionOrCipherMismatch                Code = -113
	ErrSSLRenegotiationRequested                 Code = -114
	ErrProxyAuthUnsupported                      Code = -115
	ErrBadSSLClientAuthCert                      Code = -117
	ErrConnectionTimedOut                        Code = -118
	ErrHostResolverQueueTooLarge                 Code = -119
	ErrSOCKSConnectionFailed                     Code = -120
	ErrSOCKSConnectionHostUnreachable            Code = -121
	ErrALPNNegotiationFailed                     Code = -122
	ErrSSLNoRenegotiation                        Code = -123
	ErrWinsockUnexpectedWrittenBytes             Code = -124
	ErrSSLDecompressionFailureAlert              Code = -125
	ErrSSLBadRecordMACAlert                      Code = -126
	ErrProxyAuthRequested                        Code = -127
	ErrProxyConnectionFailed                     Code = -130
	ErrMandatoryProxyConfigurationFailed         Code = -131
	ErrPreconnectMaxSocketLimit                  Code = -133
	ErrSSLClientAuthPrivateKeyAccessDenied       Code = -134
	ErrSSLClientAuthCertNoPrivateKey             Code = -135
	ErrProxyCertificateInvalid                   Code = -136
	ErrNameResolutionFailed                      Code = -137
	ErrNetworkAccessDenied                       Code = -138
	ErrTemporarilyThrottled                      Code = -139
	ErrHTTPSProxyTunnelResponseRedirect          Code = -140
	ErrSSLClientAuthSignatureFailed              Code = -141
	ErrMsgTooBig                                 Code = -142
	ErrWSProtocolError                           Code = -145
	ErrAddressInUse                              Code = -147
	ErrSSLHandshakeNotCompleted                  Code = -148
	ErrSSLBadPeerPublicKey                       Code = -149
	ErrSSLPinnedKeyNotInCertChain                Code = -150
	ErrClientAuthCertTypeUnsupported             Code = -151
	ErrSSLDecryptErrorAlert                      Code = -153
	ErrWSThrottleQueueTooLarge                   Code = -154
	ErrSSLServerCertChanged                      Code = -156
	ErrSSLUnrecognizedNameAlert                  Code = -159
	ErrSocketSetReceiveBufferSizeError           Code = -160
	ErrSocketSetSendBufferSizeError              Code = -161
	ErrSocketReceiveBufferSizeUnchangeable       Code = -162
	ErrSocketSendBufferSizeUnchangeable          Code = -163
	ErrSSLClientAuthCertBadFormat                Code = -164
	ErrICANNNameCollision                        Code = -166
	ErrSSLServerCertBadFormat                    Code = -167
	ErrCTSTHParsingFailed                        Code = -168
	ErrCTSTHIncomplete                           Code = -169
	ErrUnableToReuseConnectionForProxyAuth       Code = -170
	ErrCTConsistencyProofParsingFailed           Code = -171
	ErrSSLObsoleteCipher                         Code = -172
	ErrWSUpgrade                                 Code = -173
	ErrReadIfReadyNotImplemented                 Code = -174
	ErrNoBufferSpace                             Code = -176
	ErrSSLClientAuthNoCommonAlgorithms           Code = -177
	ErrEarlyDataRejected                         Code = -178
	ErrWrongVersionOnEarlyData                   Code = -179
	ErrTLS13DowngradeDetected                    Code = -180
	ErrSSLKeyUsageIncompatible                   Code = -181
	ErrInvalidECHConfigList                      Code = -182
	ErrECHNotNegotiated                          Code = -183
	ErrECHFallbackCertificateInvalid             Code = -184
	ErrCertCommonNameInvalid                     Code = -200
	ErrCertDateInvalid                           Code = -201
	ErrCertAuthorityInvalid                      Code = -202
	ErrCertContainsErrors                        Code = -203
	ErrCertNoRevocationMechanism                 Code = -204
	ErrCertUnableToCheckRevocation               Code = -205
	ErrCertRevoked                               Code = -206
	ErrCertInvalid                               Code = -207
	ErrCertWeakSignatureAlgorithm                Code = -208
	ErrCertNonUniqueName                         Code = -210
	ErrCertWeakKey                               Code = -211
	ErrCertNameConstraintViolation               Code = -212
	ErrCertValidityTooLong                       Code = -213
	ErrCertificateTransparencyRequired           Code = -214
	ErrCertSymantecLegacy                        Code = -215
	ErrCertKnownInterceptionBlocked              Code = -217
	ErrSSLObsoleteVersionOrCipher                Code = -218
	ErrCertEnd                                   Code = -219
	ErrInvalidURL                                Code = -300
	ErrDisallowedURLScheme                       Code = -301
	ErrUnknownURLScheme                          Code = -302
	ErrInvalidRedirect                           Code = -303
	ErrTooManyRedirects                          Code = -310
	ErrUnsafeRedirect                            Code = -311
	ErrUnsafePort                                Code = -312
	ErrInvalidResponse                           Code = -320
	ErrInvalidChunkedEncoding                    Code = -321
	ErrMethodUnsupported                         Code = -322
	ErrUnexpectedProxyAuth                       Code = -323
	ErrEmptyResponse                             Code = -324
	ErrResponseHeadersTooBig                     Code = -325
	ErrPACScriptFailed                           Code = -327
	ErrRequestRangeNotSatisfiable                Code = -328
	ErrMalformedIdentity                         Code = -329
	ErrContentDecodingFailed                     Code = -330
	ErrNetworkIOSuspended                        Code = -331
	ErrSYNReplyNotReceived                       Code = -332
	ErrEncodingConversionFailed                  Code = -333
	ErrUnrecognizedFTPDirectoryListingFormat     Code = -334
	ErrNoSupportedProxies                        Code = -336
	ErrHTTP2ProtocolError                        Code = -337
	ErrInvalidAuthCredentials                    Code = -338
	ErrUnsupportedAuthScheme                     Code = -339
	ErrEncodingDetectionFailed                   Code = -340
	ErrMissingAuthCredentials                    Code = -341
	ErrUnexpectedSecurityLibraryStatus           Code = -342
	ErrMisconfiguredAuthEnvironment              Code = -343
	ErrUndocumentedSecurityLibraryStatus         Code = -344
	ErrResponseBodyTooBigToDrain                 Code = -345
	ErrResponseHeadersMultipleContentLength      Code = -346
	ErrIncompleteHTTP2Headers                    Code = -347
	ErrPACNotInDHCP                              Code = -348
	ErrResponseHeadersMultipleContentDisposition Code = -349
	ErrResponseHeadersMultipleLocation           Code = -350
	ErrHTTP2ServerRefusedStream                  Code = -351
	ErrHTTP2PingFailed                           Code = -352
	ErrContentLengthMismatch                     Code = -354
	ErrIncompleteChunkedEncoding                 Code = -355
	ErrQUICProtocolError                         Code = -356
	ErrResponseHeadersTruncated                  Code = -357
	ErrQUICHandshakeFailed                       Code = -358
	ErrHTTP2InadequateTransportSecurity          Code = -360
	ErrHTTP2FlowControlError                     Code = -361
	ErrHTTP2FrameSizeError                       Code = -362
	ErrHTTP2CompressionError                     Code = -363
	ErrProxyAuthRequestedWithNoConnection        Code = -364
	ErrHTTP11Required                            Code = -365
	ErrProxyHTTP11Required                       Code = -366
	ErrPACScriptTerminated                       Code = -367
	ErrInvalidHTTPResponse                       Code = -370
	ErrContentDecodingInitFailed                 Code = -371
	ErrHTTP2RstStreamNoErrorReceived             Code = -372
	ErrHTTP2PushedStreamNotAvailable             Code = -373
	ErrHTTP2ClaimedPushedStreamResetByServer     Code = -374
	ErrTooManyRetries                            Code = -375
	ErrHTTP2StreamClosed                         Code = -376
	ErrHTTP2ClientRefusedStream                  Code = -377
	ErrHTTP2PushedResponseDoesNotMatch           Code = -378
	ErrHTTPResponseCodeFailure                   Code = -379
	ErrQUICUnknownCertRoot                       Code = -380
	ErrQUICGoawayRequestCanBeRetried             Code = -381
	ErrTooManyAcceptCHRestarts                   Code = -382
	ErrInconsistentIPAddressSpace                Code = -383

	ErrCachedIPAddressSpaceBlockedByLocalNetworkAccessPolicy Code = -384

	ErrCacheMiss                                 Code = -400
	ErrCacheReadFailure                          Code = -401
	ErrCacheWriteFailure                         Code = -402
	ErrCacheOperationUnsupported                 Code = -403
	ErrCacheOpenFailure                          Code = -404
	ErrCacheCreateFailure                        Code = -405
	ErrCacheRace                                 Code = -406
	ErrCacheChecksumReadFailure                  Code = -407
	ErrCacheChecksumMismatch                     Code = -408
	ErrCacheLockTimeout                          Code = -409
	ErrCacheAuthFailureAfterRead                 Code = -410
	ErrCacheEntryNotSuitable                     Code = -411
	ErrCacheDoomFailure                          Code = -412
	ErrCacheOpenOrCreateFailure                  Code = -413
	ErrInsecureResponse                          Code = -501
	ErrNoPrivateKeyForCert                       Code = -502
	ErrAddUserCertFailed                         Code = -503
	ErrInvalidSignedExchange                     Code = -504
	ErrInvalidWebBundle                          Code = -505
	ErrTrustTokenOperationFailed                 Code = -506

	ErrTrustTokenOperationSuccessWithoutSendingRequest Code = -507

	ErrFTPFailed                                 Code = -601
	ErrFTPServiceUnavailable                     Code = -602
	ErrFTPTransferAborted                        Code = -603
	ErrFTPFileBusy                               Code = -604
	ErrFTPSyntaxError                            Code = -605
	ErrFTPCommandUnsupported                     Code = -606
	ErrFTPBadCommandSequence                     Code = -607
	ErrPKCS12ImportBadPassword                   Code = -701
	ErrPKCS12ImportFailed                        Code = -702
	ErrImportCACertNotCA                         Code = -703
	ErrImportCertAlreadyExists                   Code = -704
	ErrImportCACertFailed                        Code = -705
	ErrImportServerCertFailed                    Code = -706
	ErrPKCS12ImportInvalidMAC                    Code = -707
	ErrPKCS12ImportInvalidFile                   Code = -708
	ErrPKCS12ImportUnsupported                   Code = -709
	ErrKeyGenerationFailed                       Code = -710
	ErrPrivateKeyExportFailed                    Code = -712
	ErrSelfSignedCertGenerationFailed            Code = -713
	ErrCertDatabaseChanged                       Code = -714
	ErrCertVerifierChanged                       Code = -716
	ErrDNSMalformedResponse                      Code = -800
	ErrDNSServerRequiresTcp                      Code = -801
	ErrDNSServerFailed                           Code = -802
	ErrDNSTimedOut                               Code = -803
	ErrDNSCacheMiss                              Code = -804
	ErrDNSSearchEmpty                            Code = -805
	ErrDNSSortError                              Code = -806
	ErrDNSSecureResolverHostnameResolutionFailed Code = -808
	ErrDNSNameHTTPSOnly                          Code = -809
	ErrDNSRequestCanceled                        Code = -810
	ErrDNSNoMatchingSupportedALPN                Code = -811
)

var names = map[Code]string{
	NetOK:                                        "NET_OK",
	ErrIOPending:                                 "ERR_IO_PENDING",
	ErrFailed:                                    "ERR_FAILED",
	ErrAborted:                                   "ERR_ABORTED",
	ErrInvalidArgument:                           "ERR_INVALID_ARGUMENT",
	ErrInvalidHandle:                             "ERR_INVALID_HANDLE",
	ErrFileNotFound:                              "ERR_FILE_NOT_FOUND",
	ErrTimedOut:                                  "ERR_TIMED_OUT",
	ErrFileTooLarge:                              "ERR_FILE_TOO_LARGE",
	ErrUnexpected:                                "ERR_UNEXPECTED",
	ErrAccessDenied:                              "ERR_ACCESS_DENIED",
	ErrNotImplemented:                            "ERR_NOT_IMPLEMENTED",
	ErrInsufficientResources:                     "ERR_INSUFFICIENT_RESOURCES",
	ErrOutOfMemory:                               "ERR_OUT_OF_MEMORY",
	ErrUploadFileChanged:                         "ERR_UPLOAD_FILE_CHANGED",
	ErrSocketNotConnected:                        "ERR_SOCKET_NOT_CONNECTED",
	ErrFileExists:                                "ERR_FILE_EXISTS",
	ErrFilePathTooLong:                           "ERR_FILE_PATH_TOO_LONG",
	ErrFileNoSpace:                               "ERR_FILE_NO_SPACE",
	ErrFileVirusInfected:                         "ERR_FILE_VIRUS_INFECTED",
	ErrBlockedByClient:                           "ERR_BLOCKED_BY_CLIENT",
	ErrNetworkChanged:                            "ERR_NETWORK_CHANGED",
	ErrBlockedByAdministrator:                    "ERR_BLOCKED_BY_ADMINISTRATOR",
	ErrSocketConnected:                           "ERR_SOCKET_CONNECTED",
	ErrUploadStreamRewindNotSupported:            "ERR_UPLOAD_STREAM_REWIND_NOT_SUPPORTED",
	ErrContextShutDown:                           "ERR_CONTEXT_SHUT_DOWN",
	ErrBlockedByResponse:                         "ERR_BLOCKED_BY_RESPONSE",
	ErrCleartextNotPermitted:                     "ERR_CLEARTEXT_NOT_PERMITTED",
	ErrBlockedByCSP:                              "ERR_BLOCKED_BY_CSP",
	ErrH2OrQUICRequired:                          "ERR_H2_OR_QUIC_REQUIRED",
	ErrBlockedByORB:                              "ERR_BLOCKED_BY_ORB",
	ErrConnectionClosed:                          "ERR_CONNECTION_CLOSED",
	ErrConnectionReset:                           "ERR_CONNECTION_RESET",
	ErrConnectionRefused:                         "ERR_CONNECTION_REFUSED",
	ErrConnectionAborted:                         "ERR_CONNECTION_ABORTED",
	ErrConnectionFailed:                          "ERR_CONNECTION_FAILED",
	ErrNameNotResolved:                           "ERR_NAME_NOT_RESOLVED",
	ErrInternetDisconnected:                      "ERR_INTERNET_DISCONNECTED",
	ErrSSLProtocolError:                          "ERR_SSL_PROTOCOL_ERROR",
	ErrAddressInvalid:                            "ERR_ADDRESS_INVALID",
	ErrAddressUnreachable:                        "ERR_ADDRESS_UNREACHABLE",
	ErrSSLClientAuthCertNeeded:                   "ERR_SSL_CLIENT_AUTH_CERT_NEEDED",
	ErrTunnelConnectionFailed:                    "ERR_TUNNEL_CONNECTION_FAILED",
	ErrNoSSLVersionsEnabled:                      "ERR_NO_SSL_VERSIONS_ENABLED",
	ErrSSLVersionOrCipherMismatch:                "ERR_SSL_VERSION_OR_CIPHER_MISMATCH",
	ErrSSLRenegotiationRequested:                 "ERR_SSL_RENEGOTIATION_REQUESTED",
	ErrProxyAuthUnsupported:                      "ERR_PROXY_AUTH_UNSUPPORTED",
	ErrBadSSLClientAuthCert:                      "ERR_BAD_SSL_CLIENT_AUTH_CERT",
	ErrConnectionTimedOut:                        "ERR_CONNECTION_TIMED_OUT",
	ErrHostResolverQueueTooLarge:                 "ERR_HOST_RESOLVER_QUEUE_TOO_LARGE",
	ErrSOCKSConnectionFailed:                     "ERR_SOCKS_CONNECTION_FAILED",
	ErrSOCKSConnectionHostUnreachable:            "ERR_SOCKS_CONNECTION_HOST_UNREACHABLE",
	ErrALPNNegotiationFailed:                     "ERR_ALPN_NEGOTIATION_FAILED",
	ErrSSLNoRenegotiation:                        "ERR_SSL_NO_RENEGOTIATION",
	ErrWinsockUnexpectedWrittenBytes:             "ERR_WINSOCK_UNEXPECTED_WRITTEN_BYTES",
	ErrSSLDecompressionFailureAlert:              "ERR_SSL_DECOMPRESSION_FAILURE_ALERT",
	ErrSSLBadRecordMACAlert:                      "ERR_SSL_BAD_RECORD_MAC_ALERT",
	ErrProxyAuthRequested:                        "ERR_PROXY_AUTH_REQUESTED",
	ErrProxyConnectionFailed:                     "ERR_PROXY_CONNECTION_FAILED",
	ErrMandatoryProxyConfigurationFailed:         "ERR_MANDATORY_PROXY_CONFIGURATION_FAILED",
	ErrPreconnectMaxSocketLimit:                  "ERR_PRECONNECT_MAX_SOCKET_LIMIT",
	ErrSSLClientAuthPrivateKeyAccessDenied:       "ERR_SSL_CLIENT_AUTH_PRIVATE_KEY_ACCESS_DENIED",
	ErrSSLClientAuthCertNoPrivateKey:             "ERR_SSL_CLIENT_AUTH_CERT_NO_PRIVATE_KEY",
	ErrProxyCertificateInvalid:                   "ERR_PROXY_CERTIFICATE_INVALID",
	ErrNameResolutionFailed:                      "ERR_NAME_RESOLUTION_FAILED",
	ErrNetworkAccessDenied:                       "ERR_NETWORK_ACCESS_DENIED",
	ErrTemporarilyThrottled:                      "ERR_TEMPORARILY_THROTTLED",
	ErrHTTPSProxyTunnelResponseRedirect:          "ERR_HTTPS_PROXY_TUNNEL_RESPONSE_REDIRECT",
	ErrSSLClientAuthSignatureFailed:              "ERR_SSL_CLIENT_AUTH_SIGNATURE_FAILED",
	ErrMsgTooBig:                                 "ERR_MSG_TOO_BIG",
	ErrWSProtocolError:                           "ERR_WS_PROTOCOL_ERROR",
	ErrAddressInUse:                              "ERR_ADDRESS_IN_USE",
	ErrSSLHandshakeNotCompleted:                  "ERR_SSL_HANDSHAKE_NOT_COMPLETED",
	ErrSSLBadPeerPublicKey:                       "ERR_SSL_BAD_PEER_PUBLIC_KEY",
	ErrSSLPinnedKeyNotInCertChain:                "ERR_SSL_PINNED_KEY_NOT_IN_CERT_CHAIN",
	ErrClientAuthCertTypeUnsupported:             "ERR_CLIENT_AUTH_CERT_TYPE_UNSUPPORTED",
	ErrSSLDecryptErrorAlert:                      "ERR_SSL_DECRYPT_ERROR_ALERT",
	ErrWSThrottleQueueTooLarge:                   "ERR_WS_THROTTLE_QUEUE_TOO_LARGE",
	ErrSSLServerCertChanged:                      "ERR_SSL_SERVER_CERT_CHANGED",
	ErrSSLUnrecognizedNameAlert:                  "ERR_SSL_UNRECOGNIZED_NAME_ALERT",
	ErrSocketSetReceiveBufferSizeError:           "ERR_SOCKET_SET_RECEIVE_BUFFER_SIZE_ERROR",
	ErrSocketSetSendBufferSizeError:              "ERR_SOCKET_SET_SEND_BUFFER_SIZE_ERROR",
	ErrSocketReceiveBufferSizeUnchangeable:       "ERR_SOCKET_RECEIVE_BUFFER_SIZE_UNCHANGEABLE",
	ErrSocketSendBufferSizeUnchangeable:          "ERR_SOCKET_SEND_BUFFER_SIZE_UNCHANGEABLE",
	ErrSSLClientAuthCertBadFormat:                "ERR_SSL_CLIENT_AUTH_CERT_BAD_FORMAT",
	ErrICANNNameCollision:                        "ERR_ICANN_NAME_COLLISION",
	ErrSSLServerCertBadFormat:                    "ERR_SSL_SERVER_CERT_BAD_FORMAT",
	ErrCTSTHParsingFailed:                        "ERR_CT_STH_PARSING_FAILED",
	ErrCTSTHIncomplete:                           "ERR_CT_STH_INCOMPLETE",
	ErrUnableToReuseConnectionForProxyAuth:       "ERR_UNABLE_TO_REUSE_CONNECTION_FOR_PROXY_AUTH",
	ErrCTConsistencyProofParsingFailed:           "ERR_CT_CONSISTENCY_PROOF_PARSING_FAILED",
	ErrSSLObsoleteCipher:                         "ERR_SSL_OBSOLETE_CIPHER",
	ErrWSUpgrade:                                 "ERR_WS_UPGRADE",
	ErrReadIfReadyNotImplemented:                 "ERR_READ_IF_READY_NOT_IMPLEMENTED",
	ErrNoBufferSpace:                             "ERR_NO_BUFFER_SPACE",
	ErrSSLClientAuthNoCommonAlgorithms:           "ERR_SSL_CLIENT_AUTH_NO_COMMON_ALGORITHMS",
	ErrEarlyDataRejected:                         "ERR_EARLY_DATA_REJECTED",
	ErrWrongVersionOnEarlyData:                   "ERR_WRONG_VERSION_ON_EARLY_DATA",
	ErrTLS13DowngradeDetected:                    "ERR_TLS13_DOWNGRADE_DETECTED",
	ErrSSLKeyUsageIncompatible:                   "ERR_SSL_KEY_USAGE_INCOMPATIBLE",
	ErrInvalidECHConfigList:                      "ERR_INVALID_ECH_CONFIG_LIST",
	ErrECHNotNegotiated:                          "ERR_ECH_NOT_NEGOTIATED",
	ErrECHFallbackCertificateInvalid:             "ERR_ECH_FALLBACK_CERTIFICATE_INVALID",
	ErrCertCommonNameInvalid:                     "ERR_CERT_COMMON_NAME_INVALID",
	ErrCertDateInvalid:                           "ERR_CERT_DATE_INVALID",
	ErrCertAuthorityInvalid:                      "ERR_CERT_AUTHORITY_INVALID",
	ErrCertContainsErrors:                        "ERR_CERT_CONTAINS_ERRORS",
	ErrCertNoRevocationMechanism:                 "ERR_CERT_NO_REVOCATION_MECHANISM",
	ErrCertUnableToCheckRevocation:               "ERR_CERT_UNABLE_TO_CHECK_REVOCATION",
	ErrCertRevoked:                               "ERR_CERT_REVOKED",
	ErrCertInvalid:                               "ERR_CERT_INVALID",
	ErrCertWeakSignatureAlgorithm:                "ERR_CERT_WEAK_SIGNATURE_ALGORITHM",
	ErrCertNonUniqueName:                         "ERR_CERT_NON_UNIQUE_NAME",
	ErrCertWeakKey:                               "ERR_CERT_WEAK_KEY",
	ErrCertNameConstraintViolation:               "ERR_CERT_NAME_CONSTRAINT_VIOLATION",
	ErrCertValidityTooLong:                       "ERR_CERT_VALIDITY_TOO_LONG",
	ErrCertificateTransparencyRequired:           "ERR_CERTIFICATE_TRANSPARENCY_REQUIRED",
	ErrCertSymantecLegacy:                        "ERR_CERT_SYMANTEC_LEGACY",
	ErrCertKnownInterceptionBlocked:              "ERR_CERT_KNOWN_INTERCEPTION_BLOCKED",
	ErrSSLObsoleteVersionOrCipher:                "ERR_SSL_OBSOLETE_VERSION_OR_CIPHER",
	ErrCertEnd:                                   "ERR_CERT_END",
	ErrInvalidURL:                                "ERR_INVALID_URL",
	ErrDisallowedURLScheme:                       "ERR_DISALLOWED_URL_SCHEME",
	ErrUnknownURLScheme:                          "ERR_UNKNOWN_URL_SCHEME",
	ErrInvalidRedirect:                           "ERR_INVALID_REDIRECT",
	ErrTooManyRedirects:                          "ERR_TOO_MANY_REDIRECTS",
	ErrUnsafeRedirect:                            "ERR_UNSAFE_REDIRECT",
	ErrUnsafePort:                                "ERR_UNSAFE_PORT",
	ErrInvalidResponse:                           "ERR_INVALID_RESPONSE",
	ErrInvalidChunkedEncoding:                    "ERR_INVALID_CHUNKED_ENCODING",
	ErrMethodUnsupported:                         "ERR_METHOD_UNSUPPORTED",
	ErrUnexpectedProxyAuth:                       "ERR_UNEXPECTED_PROXY_AUTH",
	ErrEmptyResponse:                             "ERR_EMPTY_RESPONSE",
	ErrResponseHeadersTooBig:                     "ERR_RESPONSE_HEADERS_TOO_BIG",
	ErrPACScriptFailed:                           "ERR_PAC_SCRIPT_FAILED",
	ErrRequestRangeNotSatisfiable:                "ERR_REQUEST_RANGE_NOT_SATISFIABLE",
	ErrMalformedIdentity:                         "ERR_MALFORMED_IDENTITY",
	ErrContentDecodingFailed:                     "ERR_CONTENT_DECODING_FAILED",
	ErrNetworkIOSuspended:                        "ERR_NETWORK_IO_SUSPENDED",
	ErrSYNReplyNotReceived:                       "ERR_SYN_REPLY_NOT_RECEIVED",
	ErrEncodingConversionFailed:                  "ERR_ENCODING_CONVERSION_FAILED",
	ErrUnrecognizedFTPDirectoryListingFormat:     "ERR_UNRECOGNIZED_FTP_DIRECTORY_LISTING_FORMAT",
	ErrNoSupportedProxies:                        "ERR_NO_SUPPORTED_PROXIES",
	ErrHTTP2ProtocolError:                        "ERR_HTTP2_PROTOCOL_ERROR",
	ErrInvalidAuthCredentials:                    "ERR_INVALID_AUTH_CREDENTIALS",
	ErrUnsupportedAuthScheme:                     "ERR_UNSUPPORTED_AUTH_SCHEME",
	ErrEncodingDetectionFailed:                   "ERR_ENCODING_DETECTION_FAILED",
	ErrMissingAuthCredentials:                    "ERR_MISSING_AUTH_CREDENTIALS",
	ErrUnexpectedSecurityLibraryStatus:           "ERR_UNEXPECTED_SECURITY_LIBRARY_STATUS",
	ErrMisconfiguredAuthEnvironment:              "ERR_MISCONFIGURED_AUTH_ENVIRONMENT",
	ErrUndocumentedSecurityLibraryStatus:         "ERR_UNDOCUMENTED_SECURITY_LIBRARY_STATUS",
	ErrResponseBodyTooBigToDrain:                 "ERR_RESPONSE_BODY_TOO_BIG_TO_DRAIN",
	ErrResponseHeadersMultipleContentLength:      "ERR_RESPONSE_HEADERS_MULTIPLE_CONTENT_LENGTH",
	ErrIncompleteHTTP2Headers:                    "ERR_INCOMPLETE_HTTP2_HEADERS",
	ErrPACNotInDHCP:                              "ERR_PAC_NOT_IN_DHCP",
	ErrResponseHeadersMultipleContentDisposition: "ERR_RESPONSE_HEADERS_MULTIPLE_CONTENT_DISPOSITION",
	ErrResponseHeadersMultipleLocation:           "ERR_RESPONSE_HEADERS_MULTIPLE_LOCATION",
	ErrHTTP2ServerRefusedStream:                  "ERR_HTTP2_SERVER_REFUSED_STREAM",
	ErrHTTP2PingFailed:                           "ERR_HTTP2_PING_FAILED",
	ErrContentLengthMismatch:                     "ERR_CONTENT_LENGTH_MISMATCH",
	ErrIncompleteChunkedEncoding:                 "ERR_INCOMPLETE_CHUNKED_ENCODING",
	ErrQUICProtocolError:                         "ERR_QUIC_PROTOCOL_ERROR",
	ErrResponseHeadersTruncated:                  "ERR_RESPONSE_HEADERS_TRUNCATED",
	ErrQUICHandshakeFailed:                       "ERR_QUIC_HANDSHAKE_FAILED",
	ErrHTTP2InadequateTransportSecurity:          "ERR_HTTP2_INADEQUATE_TRANSPORT_SECURITY",
	ErrHTTP2FlowControlError:                     "ERR_HTTP2_FLOW_CONTROL_ERROR",
	ErrHTTP2FrameSizeError:                       "ERR_HTTP2_FRAME_SIZE_ERROR",
	ErrHTTP2CompressionError:                     "ERR_HTTP2_COMPRESSION_ERROR",
	ErrProxyAuthRequestedWithNoConnection:        "ERR_PROXY_AUTH_REQUESTED_WITH_NO_CONNECTION",
	ErrHTTP11Required:                            "ERR_HTTP_1_1_REQUIRED",
	ErrProxyHTTP11Required:                       "ERR_PROXY_HTTP_1_1_REQUIRED",
	ErrPACScriptTerminated:                       "ERR_PAC_SCRIPT_TERMINATED",
	ErrInvalidHTTPResponse:                       "ERR_INVALID_HTTP_RESPONSE",
	ErrContentDecodingInitFailed:                 "ERR_CONTENT_DECODING_INIT_FAILED",
	ErrHTTP2RstStreamNoErrorReceived:             "ERR_HTTP2_RST_STREAM_NO_ERROR_RECEIVED",
	ErrHTTP2PushedStreamNotAvailable:             "ERR_HTTP2_PUSHED_STREAM_NOT_AVAILABLE",
	ErrHTTP2ClaimedPushedStreamResetByServer:     "ERR_HTTP2_CLAIMED_PUSHED_STREAM_RESET_BY_SERVER",
	ErrTooManyRetries:                            "ERR_TOO_MANY_RETRIES",
	ErrHTTP2StreamClosed:                         "ERR_HTTP2_STREAM_CLOSED",
	ErrHTTP2ClientRefusedStream:                  "ERR_HTTP2_CLIENT_REFUSED_STREAM",
	ErrHTTP2PushedResponseDoesNotMatch:           "ERR_HTTP2_PUSHED_RESPONSE_DOES_NOT_MATCH",
	ErrHTTPResponseCodeFailure:                   "ERR_HTTP_RESPONSE_CODE_FAILURE",
	ErrQUICUnknownCertRoot:                       "ERR_QUIC_UNKNOWN_CERT_ROOT",
	ErrQUICGoawayRequestCanBeRetried:             "ERR_QUIC_GOAWAY_REQUEST_CAN_BE_RETRIED",
	ErrTooManyAcceptCHRestarts:                   "ERR_TOO_MANY_ACCEPT_CH_RESTARTS",
	ErrInconsistentIPAddressSpace:                "ERR_INCONSISTENT_IP_ADDRESS_SPACE",

	ErrCachedIPAddressSpaceBlockedByLocalNetworkAccessPolicy: "ERR_CACHED_IP_ADDRESS_SPACE_BLOCKED_BY_LOCAL_NETWORK_ACCESS_POLICY",

	ErrCacheMiss:                                 "ERR_CACHE_MISS",
	ErrCacheReadFailure:                          "ERR_CACHE_READ_FAILURE",
	ErrCacheWriteFailure:                         "ERR_CACHE_WRITE_FAILURE",
	ErrCacheOperationUnsupported:                 "ERR_CACHE_OPERATION_UNSUPPORTED",
	ErrCacheOpenFailure:                          "ERR_CACHE_OPEN_FAILURE",
	ErrCacheCreateFailure:                        "ERR_CACHE_CREATE_FAILURE",
	ErrCacheRace:                                 "ERR_CACHE_RACE",
	ErrCacheChecksumReadFailure:                  "ERR_CACHE_CHECKSUM_READ_FAILURE",
	ErrCacheChecksumMismatch:                     "ERR_CACHE_CHECKSUM_MISMATCH",
	ErrCacheLockTimeout:                          "ERR_CACHE_LOCK_TIMEOUT",
	ErrCacheAuthFailureAfterRead:                 "ERR_CACHE_AUTH_FAILURE_AFTER_READ",
	ErrCacheEntryNotSuitable:                     "ERR_CACHE_ENTRY_NOT_SUITABLE",
	ErrCacheDoomFailure:                          "ERR_CACHE_DOOM_FAILURE",
	ErrCacheOpenOrCreateFailure:                  "ERR_CACHE_OPEN_OR_CREATE_FAILURE",
	ErrInsecureResponse:                          "ERR_INSECURE_RESPONSE",
	ErrNoPrivateKeyForCert:                       "ERR_NO_PRIVATE_KEY_FOR_CERT",
	ErrAddUserCertFailed:                         "ERR_ADD_USER_CERT_FAILED",
	ErrInvalidSignedExchange:                     "ERR_INVALID_SIGNED_EXCHANGE",
	ErrInvalidWebBundle:                          "ERR_INVALID_WEB_BUNDLE",
	ErrTrustTokenOperationFailed:                 "ERR_TRUST_TOKEN_OPERATION_FAILED",

	ErrTrustTokenOperationSuccessWithoutSendingRequest: "ERR_TRUST_TOKEN_OPERATION_SUCCESS_WITHOUT_SENDING_REQUEST",

	ErrFTPFailed:                                 "ERR_FTP_FAILED",
	ErrFTPServiceUnavailable:                     "ERR_FTP_SERVICE_UNAVAILABLE",
	ErrFTPTransferAborted:                        "ERR_FTP_TRANSFER_ABORTED",
	ErrFTPFileBusy:                               "ERR_FTP_FILE_BUSY",
	ErrFTPSyntaxError:                            "ERR_FTP_SYNTAX_ERROR",
	ErrFTPCommandUnsupported:                     "ERR_FTP_COMMAND_UNSUPPORTED",
	ErrFTPBadCommandSequence:                     "ERR_FTP_BAD_COMMAND_SEQUENCE",
	ErrPKCS12ImportBadPassword:                   "ERR_PKCS12_IMPORT_BAD_PASSWORD",
	ErrPKCS12ImportFailed:                        "ERR_PKCS12_IMPORT_FAILED",
	ErrImportCACertNotCA:                         "ERR_IMPORT_CA_CERT_NOT_CA",
	ErrImportCertAlreadyExists:                   "ERR_IMPORT_CERT_ALREADY_EXISTS",
	ErrImportCACertFailed:                        "ERR_IMPORT_CA_CERT_FAILED",
	ErrImportServerCertFailed:                    "ERR_IMPORT_SERVER_CERT_FAILED",
	ErrPKCS12ImportInvalidMAC:                    "ERR_PKCS12_IMPORT_INVALID_MAC",
	ErrPKCS12ImportInvalidFile:                   "ERR_PKCS12_IMPORT_INVALID_FILE",
	ErrPKCS12ImportUnsupported:                   "ERR_PKCS12_IMPORT_UNSUPPORTED",
	ErrKeyGenerationFailed:                       "ERR_KEY_GENERATION_FAILED",
	ErrPrivateKeyExportFailed:                    "ERR_PRIVATE_KEY_EXPORT_FAILED",
	ErrSelfSignedCertGenerationFailed:            "ERR_SELF_SIGNED_CERT_GENERATION_FAILED",
	ErrCertDatabaseChanged:                       "ERR_CERT_DATABASE_CHANGED",
	ErrCertVerifierChanged:                       "ERR_CERT_VERIFIER_CHANGED",
	ErrDNSMalformedResponse:                      "ERR_DNS_MALFORMED_RESPONSE",
	ErrDNSServerRequiresTcp:                      "ERR_DNS_SERVER_REQUIRES_TCP",
	ErrDNSServerFailed:                           "ERR_DNS_SERVER_FAILED",
	ErrDNSTimedOut:                               "ERR_DNS_TIMED_OUT",
	ErrDNSCacheMiss:                              "ERR_DNS_CACHE_MISS",
	ErrDNSSearchEmpty:                            "ERR_DNS_SEARCH_EMPTY",
	ErrDNSSortError:                              "ERR_DNS_SORT_ERROR",
	ErrDNSSecureResolverHostnameResolutionFailed: "ERR_DNS_SECURE_RESOLVER_HOSTNAME_RESOLUTION_FAILED",
	ErrDNSNameHTTPSOnly:                          "ERR_DNS_NAME_HTTPS_ONLY",
	ErrDNSRequestCanceled:                        "ERR_DNS_REQUEST_CANCELED",
	ErrDNSNoMatchingSupportedALPN:                "ERR_DNS_NO_MATCHING_SUPPORTED_ALPN",
}
