package nodes

import (
	"context"
	"io"
	"net/http"

	"github.com/birdayz/dflow"
	"github.com/go-logr/logr"
)

// HTTPPoller is a source that issues a GET to URL every tick and emits the
// response body as a string. A failed request logs the error via Logger
// and reports Empty for that tick rather than stopping the pipeline — a
// transient fetch failure isn't terminal.
type HTTPPoller struct {
	dflow.SourceBase[string]

	name   string
	URL    string
	Client *http.Client
	Logger logr.Logger
}

// NewHTTPPoller returns an HTTPPoller named name, fetching url with an
// http.DefaultClient and a no-op logger unless overridden on the returned
// value.
func NewHTTPPoller(name, url string) *HTTPPoller {
	return &HTTPPoller{
		name:   name,
		URL:    url,
		Client: http.DefaultClient,
		Logger: logr.Discard(),
	}
}

func (h *HTTPPoller) Name() string { return h.name }

func (h *HTTPPoller) PollNext(ctx context.Context) (dflow.PollState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return dflow.Empty, err
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		h.Logger.Error(err, "poll failed", "url", h.URL)
		return dflow.Empty, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.Logger.Error(err, "reading response body failed", "url", h.URL)
		return dflow.Empty, nil
	}

	h.Set(string(body))
	h.Logger.V(1).Info("polled", "url", h.URL, "bytes", len(body))
	return dflow.Ready, nil
}
