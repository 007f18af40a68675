package errors

// ErrorCode identifies an application error condition.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED       ErrorCode = 2001
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2003
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = 2004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND           ErrorCode = 3000
	ErrorCode_MEETING_INVALID_ID          ErrorCode = 3001
	ErrorCode_MEETING_ALREADY_SUMMARIZED  ErrorCode = 3002
	ErrorCode_MEETING_TRANSCRIPT_REQUIRED ErrorCode = 3003

	// Tasks
	ErrorCode_TASK_NOT_FOUND ErrorCode = 4000

	// AI
	ErrorCode_AI_SUMMARY_FAILED      ErrorCode = 5000
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 5001

	// Integrations
	ErrorCode_DB_QUERY_FAILED          ErrorCode = 6000
	ErrorCode_INTEGRATION_CACHE_FAILED ErrorCode = 6001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                     "HTTP_OK",
	ErrorCode_INTERNAL:                    "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:            "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                   "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:              "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:           "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:             "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                   "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:             "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:          "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:          "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_INVALID_CREDENTIALS:    "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:         "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:    "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_MEETING_NOT_FOUND:           "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_ID:          "MEETING_INVALID_ID",
	ErrorCode_MEETING_ALREADY_SUMMARIZED:  "MEETING_ALREADY_SUMMARIZED",
	ErrorCode_MEETING_TRANSCRIPT_REQUIRED: "MEETING_TRANSCRIPT_REQUIRED",
	ErrorCode_TASK_NOT_FOUND:              "TASK_NOT_FOUND",
	ErrorCode_AI_SUMMARY_FAILED:           "AI_SUMMARY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:      "AI_SERVICE_UNAVAILABLE",
	ErrorCode_DB_QUERY_FAILED:             "DB_QUERY_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:    "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
