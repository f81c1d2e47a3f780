package imagepkg

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	neturl "net/url"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/metrics"
	"github.com/youruser/agentcard/internal/tracer"
	"github.com/youruser/agentcard/internal/util"
)

const (
	defaultHTTPTimeout                 = 10 * time.Second
	defaultCBMaxFailures uint32        = 5
	defaultCBTimeout     time.Duration = 30 * time.Second
	defaultCBInterval    time.Duration = 60 * time.Second
)

// ByteCache is an optional store for fetched asset bytes.
type ByteCache interface {
	Get(ctx context.Context, url string) ([]byte, bool, error)
	Set(ctx context.Context, url string, data []byte) error
}

type HTTPOptions struct {
	Client      *http.Client
	Timeout     time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
	Interval    time.Duration
	Cache       ByteCache
}

// errCallerGone marks a fetch abandoned because the caller's context ended.
// It says nothing about the host, so breakers do not count it.
var errCallerGone = errors.New("imagepkg: caller gave up")

// HTTPSource downloads remote assets such as agent photos. Loads are never
// retried; when a host keeps failing its breaker opens and loads from that
// host fail fast. Other hosts are unaffected.
type HTTPSource struct {
	client   *http.Client
	settings gobreaker.Settings
	cache    ByteCache
	log      logger.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

func NewHTTPSource(opts HTTPOptions, log logger.Logger) *HTTPSource {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	maxFailures := opts.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultCBMaxFailures
	}
	openTimeout := opts.OpenTimeout
	if openTimeout == 0 {
		openTimeout = defaultCBTimeout
	}
	interval := opts.Interval
	if interval == 0 {
		interval = defaultCBInterval
	}

	settings := gobreaker.Settings{
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
		// A missing asset is a healthy answer from the host.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, errCallerGone)
		},
	}

	return &HTTPSource{
		client:   client,
		settings: settings,
		cache:    opts.Cache,
		log:      log,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

// breaker returns the breaker for rawURL's host, creating it on first use.
func (s *HTTPSource) breaker(rawURL string) *gobreaker.CircuitBreaker[[]byte] {
	host := rawURL
	if u, err := neturl.Parse(rawURL); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cb, ok := s.breakers[host]
	if !ok {
		st := s.settings
		st.Name = "assets:http:" + host
		cb = gobreaker.NewCircuitBreaker[[]byte](st)
		s.breakers[host] = cb
	}
	return cb
}

func (s *HTTPSource) Load(ctx context.Context, url string) (image.Image, error) {
	ctx, span := tracer.StartSpan(ctx, "assets.http.load")
	defer span.End()
	span.SetAttributes(tracer.StringAttr("url", url))

	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, url); err != nil {
			s.log.Debug("asset cache read failed", map[string]interface{}{"url": url, "error": err.Error()})
		} else if ok {
			if img, err := Decode(data, url); err == nil {
				metrics.AssetLoads.WithLabelValues("http", metrics.OutcomeCached).Inc()
				return img, nil
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.breaker(url).Execute(func() ([]byte, error) {
		data, err := s.fetch(ctx, url)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerGone, ctx.Err())
		}
		return data, err
	})
	if err != nil {
		metrics.AssetLoads.WithLabelValues("http", metrics.OutcomeMiss).Inc()
		tracer.RecordError(span, err)
		return nil, err
	}
	img, err := Decode(data, url)
	if err != nil {
		metrics.AssetLoads.WithLabelValues("http", metrics.OutcomeMiss).Inc()
		tracer.RecordError(span, err)
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, url, data); err != nil {
			s.log.Debug("asset cache write failed", map[string]interface{}{"url": url, "error": err.Error()})
		}
	}
	metrics.AssetLoads.WithLabelValues("http", metrics.OutcomeHit).Inc()
	tracer.SetOK(span)
	return img, nil
}

func (s *HTTPSource) fetch(ctx context.Context, url string) ([]byte, error) {
	data, err := util.GetBytes(ctx, s.client, url)
	var se *util.StatusError
	if errors.As(err, &se) && (se.Code == http.StatusNotFound || se.Code == http.StatusGone) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	return data, err
}
