package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// json is the codec for request and response bodies. Report payloads carry
// thousands of rows, the faster encoder is noticeable there.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
