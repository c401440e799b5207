package ipp

// Common operation ids (RFC 8011) and status codes, for readable dumps.
// The header field itself stays a raw uint16 on Frame.

// Operation ids.
const (
    OpPrintJob             uint16 = 0x0002
    OpPrintURI             uint16 = 0x0003
    OpValidateJob          uint16 = 0x0004
    OpCreateJob            uint16 = 0x0005
    OpSendDocument         uint16 = 0x0006
    OpCancelJob            uint16 = 0x0008
    OpGetJobAttributes     uint16 = 0x0009
    OpGetJobs              uint16 = 0x000a
    OpGetPrinterAttributes uint16 = 0x000b
    OpHoldJob              uint16 = 0x000c
    OpReleaseJob           uint16 = 0x000d
)

// Status codes.
const (
    StatusOK                     uint16 = 0x0000
    StatusOKIgnoredOrSubstituted uint16 = 0x0001
    StatusBadRequest             uint16 = 0x0400
    StatusForbidden              uint16 = 0x0401
    StatusNotAuthenticated       uint16 = 0x0402
    StatusNotAuthorized          uint16 = 0x0403
    StatusNotPossible            uint16 = 0x0404
    StatusTimeout                uint16 = 0x0405
    StatusNotFound               uint16 = 0x0406
    StatusInternalError          uint16 = 0x0500
    StatusOperationNotSupported  uint16 = 0x0501
    StatusVersionNotSupported    uint16 = 0x0503
)

var opNames = map[uint16]string{
    OpPrintJob:             "Print-Job",
    OpPrintURI:             "Print-URI",
    OpValidateJob:          "Validate-Job",
    OpCreateJob:            "Create-Job",
    OpSendDocument:         "Send-Document",
    OpCancelJob:            "Cancel-Job",
    OpGetJobAttributes:     "Get-Job-Attributes",
    OpGetJobs:              "Get-Jobs",
    OpGetPrinterAttributes: "Get-Printer-Attributes",
    OpHoldJob:              "Hold-Job",
    OpReleaseJob:           "Release-Job",
}

var statusNames = map[uint16]string{
    StatusOK:                     "successful-ok",
    StatusOKIgnoredOrSubstituted: "successful-ok-ignored-or-substituted-attributes",
    StatusBadRequest:             "client-error-bad-request",
    StatusForbidden:              "client-error-forbidden",
    StatusNotAuthenticated:       "client-error-not-authenticated",
    StatusNotAuthorized:          "client-error-not-authorized",
    StatusNotPossible:            "client-error-not-possible",
    StatusTimeout:                "client-error-timeout",
    StatusNotFound:               "client-error-not-found",
    StatusInternalError:          "server-error-internal-error",
    StatusOperationNotSupported:  "server-error-operation-not-supported",
    StatusVersionNotSupported:    "server-error-version-not-supported",
}

// OperationName returns the registered name of an operation id, or "" when
// unknown.
func OperationName(op uint16) string { return opNames[op] }

// StatusName returns the registered name of a status code, or "" when
// unknown.
func StatusName(code uint16) string { return statusNames[code] }
