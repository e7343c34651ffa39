package llm

import (
	"testing"

	"go.uber.org/goleak"
)

// SDK clients keep idle keep-alive connections to httptest servers.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}
