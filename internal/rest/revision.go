package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	revisionHeader    = "Etag"
	ifNoneMatchHeader = "If-None-Match"
)

// checkRevisionIsSame reports whether the client already has the state at revision,
// provided either with Etag or standard If-None-Match header.
func checkRevisionIsSame(stateRevision uint64, req *http.Request) bool {
	provided := req.Header.Get(ifNoneMatchHeader)
	if len(req.Header[revisionHeader]) == 1 {
		provided = req.Header[revisionHeader][0]
	}

	if provided == "" {
		return false
	}

	providedRevision, err := strconv.ParseUint(strings.Trim(provided, `"`), 10, 64)
	return err == nil && providedRevision == stateRevision
}

func setRevisionInResponse(stateRevision uint64, res http.ResponseWriter) {
	res.Header().Add(revisionHeader, fmt.Sprintf("%d", stateRevision))
}
