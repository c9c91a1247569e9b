package json

type Errors struct {
	Errors []ErrorInfo `json:"errors"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Errors) ErrorMessage() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Message
	}

	return ""
}
