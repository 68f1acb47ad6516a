package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lefergusion/storefront/internal/core/port"
	"github.com/lefergusion/storefront/pkg/retry"
)

const fetchRetryDelay = time.Second

// Loader delivers the product list to the state core exactly once per
// Load call. The source is either an HTTP(S) URL or a local file path;
// the payload is a JSON array of products. Entries are passed through
// as-is: the core tolerates malformed fields, they only degrade
// presentation.
type Loader struct {
	source      string
	maxAttempts int
	client      *http.Client
	seeder      port.CatalogSeeder
}

func NewLoader(
	source string, fetchTimeout time.Duration, maxAttempts int,
	seeder port.CatalogSeeder,
) Loader {
	return Loader{
		source:      source,
		maxAttempts: maxAttempts,
		client:      &http.Client{Timeout: fetchTimeout},
		seeder:      seeder,
	}
}

// Load fetches, decodes and seeds the catalog. On failure the state
// keeps its previous catalog (empty at startup): browsing surfaces
// serve the empty case, the process stays up.
func (l Loader) Load(ctx context.Context) error {
	const op = "Loader.Load"
	log := slog.With("op", op)

	raw, err := l.fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var ps []Product
	if err := json.Unmarshal(raw, &ps); err != nil {
		return fmt.Errorf("%s: invalid catalog JSON: %w", op, err)
	}

	if err := l.seeder.SeedCatalog(ctx, toDomain(ps)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog loaded", "nProducts", len(ps))
	return nil
}

func (l Loader) fetch(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(l.source, "http://") ||
		strings.HasPrefix(l.source, "https://") {
		return l.fetchHTTP(ctx)
	}
	return os.ReadFile(l.source)
}

func (l Loader) fetchHTTP(ctx context.Context) (raw []byte, err error) {
	c := retry.Config{
		MaxAttempts: l.maxAttempts,
		Backoff:     retry.LinearBackoff(fetchRetryDelay),
	}

	err = retry.Do(ctx, c, func() error {
		raw, err = l.doRequest(ctx)
		return err
	})
	return raw, err
}

func (l Loader) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, nil)
	if err != nil {
		return nil, err
	}

	res, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	return io.ReadAll(res.Body)
}
