package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in milliseconds since the epoch.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single entry together with the reader's language.
func NewEntryResponse(entry interface{}, language string) ResponseModel {
	data := map[string]interface{}{
		"entry":    entry,
		"language": language,
	}
	return NewOKResponse(data)
}

// NewListResponse wraps a list together with the reader's language.
func NewListResponse(list interface{}, language string) ResponseModel {
	data := map[string]interface{}{
		"list":     list,
		"language": language,
	}
	return NewOKResponse(data)
}
