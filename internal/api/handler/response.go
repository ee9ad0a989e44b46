package handler

import "github.com/labstack/echo/v4"

// BaseResponse is the uniform envelope both services speak:
// {"resp_code": int, "message": string, "data": object|array|null}.
// resp_code always mirrors the HTTP status; data is null when absent.
type BaseResponse struct {
	RespCode int    `json:"resp_code"`
	Message  string `json:"message"`
	Data     any    `json:"data"`
}

// respond writes the envelope with resp_code mirroring the HTTP status.
func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, BaseResponse{RespCode: code, Message: message, Data: data})
}
