package twitch_user_authorization

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	twitchHandler "twitch_prediction_manager/internal/handlers/twitch"
	"twitch_prediction_manager/internal/middleware"
	"twitch_prediction_manager/internal/models"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var shutdownTimeout = 5 * time.Second

// CallbackListener is a one-shot local server for the OAuth redirect. It hands
// over the first callback carrying a code and can't be reused afterwards.
type CallbackListener struct {
	addr     string
	srv      *http.Server
	ln       net.Listener
	once     sync.Once
	received chan models.AuthorizationCallback
}

func NewCallbackListener(addr string) *CallbackListener {
	cl := &CallbackListener{
		addr:     addr,
		received: make(chan models.AuthorizationCallback, 1),
	}

	handler := twitchHandler.NewTwitchHandler(cl.receive)

	router := mux.NewRouter()
	router.Use(middleware.LogRequests)
	router.PathPrefix("/").HandlerFunc(handler.GetAuthorizationCode).Methods(http.MethodGet)

	cl.srv = &http.Server{
		Handler:      router,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,
	}

	return cl
}

func (cl *CallbackListener) receive(callback models.AuthorizationCallback) {
	cl.once.Do(func() {
		cl.received <- callback
	})
}

// Start binds the port so the redirect can't arrive before anyone listens.
func (cl *CallbackListener) Start() error {
	ln, err := net.Listen("tcp", cl.addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", cl.addr)
	}

	cl.ln = ln

	return nil
}

func (cl *CallbackListener) Addr() string {
	if cl.ln == nil {
		return cl.addr
	}
	return cl.ln.Addr().String()
}

// Wait serves until a code arrives, timeout passes or ctx is done. The port is
// released before Wait returns.
func (cl *CallbackListener) Wait(ctx context.Context, timeout time.Duration) (models.AuthorizationCallback, error) {
	if cl.ln == nil {
		return models.AuthorizationCallback{}, errors.New("callback listener is not started")
	}
	defer cl.ln.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		callback models.AuthorizationCallback
		received bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := cl.srv.Serve(cl.ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "Serve")
		}
		return nil
	})

	// shutdown runs outside the handler so the success page is flushed first
	g.Go(func() error {
		select {
		case callback = <-cl.received:
			received = true
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := cl.srv.Shutdown(shutdownCtx); err != nil {
			// a captured code is still good to exchange
			if received {
				logrus.Warnf("callback listener shutdown: %v", err)
				return nil
			}
			return errors.Wrap(err, "Shutdown")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.AuthorizationCallback{}, err
	}

	if !received {
		return models.AuthorizationCallback{}, errors.Wrapf(models.ErrNoAuthorizationCode, "%v", ctx.Err())
	}

	return callback, nil
}
