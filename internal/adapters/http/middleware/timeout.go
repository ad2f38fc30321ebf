package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

// Timeout bounds each request to d. The handler runs in its own goroutine
// against a buffered writer and a context carrying the deadline, which the
// storage calls below it observe. If the deadline passes before the handler
// returns, a 504 problem response with code Timeout is written instead,
// unless the handler had already chosen a status, in which case whatever it
// buffered so far is sent. Later handler writes fail with ErrHandlerTimeout.
//
// A handler panic is re-raised on the serving goroutine as a *handlerPanic
// so Recovery, mounted outside, can answer it. A panic after the deadline
// has nobody to answer and is only logged.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				defer func() {
					v := recover()
					if v == nil {
						return
					}
					p := &handlerPanic{value: v, stack: debug.Stack()}
					if !bw.recordPanic(p) {
						logging.FromContext(r.Context()).ErrorContext(r.Context(), "panic after request timeout",
							slog.String("panic", fmt.Sprint(v)),
							slog.String("stack", string(p.stack)),
						)
					}
				}()
				next.ServeHTTP(bw, r)
			}()

			select {
			case <-done:
				if p := bw.recovered(); p != nil {
					panic(p)
				}
				bw.copyTo(w)
			case <-ctx.Done():
				uncommitted, p := bw.expire()
				if p != nil {
					panic(p)
				}
				if !uncommitted {
					bw.copyTo(w)
					return
				}
				dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusGatewayTimeout,
					dto.CodeTimeout, "the request did not complete in time"))
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether to
// send it.
type bufferedWriter struct {
	mu       sync.Mutex
	header   http.Header
	status   int
	body     []byte
	expired  bool
	panicked *handlerPanic
}

// handlerPanic carries a panic from the handler goroutine together with the
// stack it was raised on.
type handlerPanic struct {
	value any
	stack []byte
}


func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// expire marks the writer timed out. It reports false when the handler had
// already committed a status, in which case the buffered response is sent,
// and returns a panic the handler raised before the deadline won.
func (bw *bufferedWriter) expire() (bool, *handlerPanic) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	bw.expired = true
	return bw.status == 0, bw.panicked
}

// recordPanic keeps p for the serving goroutine. It reports false once the
// writer has expired.
func (bw *bufferedWriter) recordPanic(p *handlerPanic) bool {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return false
	}
	bw.panicked = p
	return true
}

func (bw *bufferedWriter) recovered() *handlerPanic {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.panicked
}

func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
