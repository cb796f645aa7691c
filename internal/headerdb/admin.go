package headerdb

import (
	"fmt"
	"log"
	"net/http"

	"github.com/tailscale/tailsql/server/tailsql"
	"tailscale.com/tsweb"
)

// AttachAdminRoutes mounts debug endpoints on the mux: a tailSQL console over
// the header store and a plain-text summary of what is loaded. Reachable only
// in dev mode or over the tailnet.
func (db *DB) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: "/debug/tailsql/",
	})
	if err != nil {
		log.Fatalf("failed to create tailsql server: %v", err)
	}
	tsql.SetDB("sqlite://headers.db", db.DB, &tailsql.DBOptions{
		Label: "Trace headers",
	})
	debug.Handle("tailsql/", "SQL console over the header store", tsql.NewMux())

	debug.Handle("headers", "Header store summary", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		n, err := db.TraceCount(ctx)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to count traces: %v", err), http.StatusInternalServerError)
			return
		}
		sgs, source, err := db.SurveyMeta(ctx)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to read survey meta: %v", err), http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "traces: %d\nsgs: %v\nsource: %s\n", n, sgs, source)
	}))
}
