package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RootGroupRouteAndMux(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	// root middleware
	r.Use(func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set("X-Root", "1")
			next.ServeHTTP(w, req)
		})
	})

	// root route
	r.Get("/status", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("status"))
	})

	// group route + group middleware
	r.Group(func(gr Router) {
		gr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Group", "1")
				next.ServeHTTP(w, req)
			})
		})
		// ensure chiSub.Mux() compiles/returns a handler (not used further, just sanity)
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Get("/meta/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("meta"))
		})
	})

	// route (subrouter) + subrouter middleware
	r.Route("/careers", func(sr Router) {
		sr.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Route", "1")
				next.ServeHTTP(w, req)
			})
		})
		// ensure chiSub.Mux() present on route, too
		if sr.Mux() == nil {
			t.Fatalf("route Mux() returned nil")
		}
		sr.Get("/ping", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("ok"))
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	// helper
	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodGet, srv.URL+path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	// root route
	rr := get("/status")
	if rr.Code != 200 || rr.Body.String() != "status" {
		t.Fatalf("GET /status => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatalf("root middleware header missing")
	}

	// group route
	rr = get("/meta/ping")
	if rr.Code != 200 || rr.Body.String() != "meta" {
		t.Fatalf("GET /meta/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatalf("root middleware not applied to group route")
	}
	if rr.Header().Get("X-Group") != "1" {
		t.Fatalf("group middleware header missing")
	}

	// routed subrouter
	rr = get("/careers/ping")
	if rr.Code != 200 || rr.Body.String() != "ok" {
		t.Fatalf("GET /careers/ping => code=%d body=%q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" {
		t.Fatalf("root middleware not applied to /careers route")
	}
	if rr.Header().Get("X-Route") != "1" {
		t.Fatalf("route middleware header missing")
	}
}

func TestAdaptChi_ExtraVerbs_Handle_And_SubrouterNesting(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	// Head, Options, Handle
	r.Head("/status/h", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.Header().Set("X-Head", "1")
	})
	r.Options("/status/o", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.Header().Set("X-Options", "1")
		w.WriteHeader(204)
	})
	r.Handle("/status/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("std"))
	}))

	// exercise chiSub.* verbs + Handle
	r.Group(func(gr Router) {
		gr.Post("/meta/post", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		gr.Put("/meta/put", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(200) })
		gr.Patch("/meta/patch", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(200) })
		gr.Delete("/meta/del", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(204) })
		gr.Head("/meta/h", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.Header().Set("X-Meta-Head", "1") })
		gr.Options("/meta/o", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(204) })
		gr.Handle("/meta/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("gstd"))
		}))

		// chiSub.Group (nested)
		gr.Group(func(ngr Router) {
			ngr.Get("/meta/nested", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("nested"))
			})
		})
	})

	// also check chiSub.Route
	r.Route("/careers", func(sr Router) {
		sr.Post("/post", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { w.WriteHeader(201) })
		sr.Route("/v1", func(nr Router) {
			nr.Get("/ok", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.WriteHeader(200)
				_, _ = w.Write([]byte("v1ok"))
			})
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, srv.URL+path, nil)
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, req)
		return rr
	}

	// root Head
	rr := do(stdhttp.MethodHead, "/status/h")
	if rr.Code != 200 || rr.Body.Len() != 0 || rr.Header().Get("X-Head") != "1" {
		t.Fatalf("HEAD /status/h => code=%d head=%q body_len=%d", rr.Code, rr.Header().Get("X-Head"), rr.Body.Len())
	}
	// root Options
	rr = do(stdhttp.MethodOptions, "/status/o")
	if rr.Code != 204 || rr.Header().Get("X-Options") != "1" {
		t.Fatalf("OPTIONS /status/o => code=%d X-Options=%q", rr.Code, rr.Header().Get("X-Options"))
	}
	// root Handle (std handler)
	rr = do(stdhttp.MethodGet, "/status/std")
	if rr.Code != 200 || rr.Body.String() != "std" {
		t.Fatalf("GET /status/std => code=%d body=%q", rr.Code, rr.Body.String())
	}

	// chiSub verbs under group
	if rr = do(stdhttp.MethodPost, "/meta/post"); rr.Code != 201 {
		t.Fatalf("POST /meta/post => %d", rr.Code)
	}
	if rr = do(stdhttp.MethodPut, "/meta/put"); rr.Code != 200 {
		t.Fatalf("PUT /meta/put => %d", rr.Code)
	}
	if rr = do(stdhttp.MethodPatch, "/meta/patch"); rr.Code != 200 {
		t.Fatalf("PATCH /meta/patch => %d", rr.Code)
	}
	if rr = do(stdhttp.MethodDelete, "/meta/del"); rr.Code != 204 {
		t.Fatalf("DELETE /meta/del => %d", rr.Code)
	}
	if rr = do(stdhttp.MethodHead, "/meta/h"); rr.Code != 200 || rr.Body.Len() != 0 || rr.Header().Get("X-Meta-Head") != "1" {
		t.Fatalf("HEAD /meta/h => code=%d len=%d X-Meta-Head=%q", rr.Code, rr.Body.Len(), rr.Header().Get("X-Meta-Head"))
	}
	if rr = do(stdhttp.MethodOptions, "/meta/o"); rr.Code != 204 {
		t.Fatalf("OPTIONS /meta/o => %d", rr.Code)
	}
	// chiSub.Handle
	rr = do(stdhttp.MethodGet, "/meta/std")
	if rr.Code != 200 || rr.Body.String() != "gstd" {
		t.Fatalf("GET /meta/std => code=%d body=%q", rr.Code, rr.Body.String())
	}

	// chiSub.Group nested endpoint
	rr = do(stdhttp.MethodGet, "/meta/nested")
	if rr.Code != 200 || rr.Body.String() != "nested" {
		t.Fatalf("GET /meta/nested => code=%d body=%q", rr.Code, rr.Body.String())
	}

	// chiSub.Route nested under /careers
	rr = do(stdhttp.MethodPost, "/careers/post")
	if rr.Code != 201 {
		t.Fatalf("POST /careers/post => %d", rr.Code)
	}
	rr = do(stdhttp.MethodGet, "/careers/v1/ok")
	if rr.Code != 200 || rr.Body.String() != "v1ok" {
		t.Fatalf("GET /careers/v1/ok => code=%d body=%q", rr.Code, rr.Body.String())
	}
}
