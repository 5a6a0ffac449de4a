// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Service metadata endpoints: the API banner and the version probe.
package api

import (
	"net/http"

	"github.com/taibuivan/selfhosthub/internal/platform/constants"
	"github.com/taibuivan/selfhosthub/internal/platform/respond"
)

// rootHandler handles GET / — a plain banner for humans poking at the API.
func rootHandler(writer http.ResponseWriter, request *http.Request) {
	respond.Message(writer, "SelfHost Hub API")
}

// versionHandler handles GET /version.
func versionHandler(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldVersion: constants.AppVersion,
	})
}
