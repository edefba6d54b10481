package constants

const (
	MsgShipNotFound       = "ship not found"
	MsgNoShipsMatch       = "no ships match the given criteria"
	MsgInvalidShipID      = "ship id must be a positive whole number"
	MsgRequiredField      = "field is required"
	MsgInvalidJSON        = "invalid JSON body"
	MsgInvalidQueryParam  = "invalid query parameter"
	MsgTooManyRequests    = "Too many requests"
	MsgInternalError      = "internal server error"
	MsgShipValidationFail = "ship validation failed"
)
