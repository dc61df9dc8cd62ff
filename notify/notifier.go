package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/cskr/pubsub"
	"github.com/dilshat/social-media/model"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	OUT = "out"

	MessageCreated = "message.created"
	MessageUpdated = "message.updated"
	MessageDeleted = "message.deleted"
)

type Event struct {
	Type    string        `json:"type"`
	Message model.Message `json:"message"`
}

type Publisher interface {
	Publish(event Event)
}

type RateLimiter interface {
	// Wait blocks until the limiter permits an event to happen.
	Wait(ctx context.Context) error
}

type Notifier interface {
	Publisher
	Start()
	Stop()
}

type notifier struct {
	webhook     string
	httpClient  *http.Client
	rateLimiter RateLimiter
	ps          *pubsub.PubSub
	out         chan interface{}
	wg          sync.WaitGroup
	mu          sync.RWMutex
	stopped     bool
}

//NewNotifier returns a notifier posting events to webhook at most perSecond times a second
func NewNotifier(webhook string, perSecond int) Notifier {
	ps := pubsub.New(100)
	return &notifier{
		webhook:     webhook,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		ps:          ps,
		out:         ps.Sub(OUT),
	}
}

func (n *notifier) Start() {
	n.wg.Add(1)
	go n.processOutgoing()
}

//Stop closes the topic and waits until already published events are delivered
func (n *notifier) Stop() {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return
	}
	n.stopped = true
	n.ps.Shutdown()
	n.mu.Unlock()

	n.wg.Wait()
}

//Publish drops the event once the notifier is stopped
func (n *notifier) Publish(event Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.stopped {
		return
	}
	n.ps.TryPub(event, OUT)
}

func (n *notifier) processOutgoing() {
	defer n.wg.Done()
	for val := range n.out {
		event, ok := val.(Event)
		if !ok {
			continue
		}
		if err := n.rateLimiter.Wait(context.Background()); err != nil {
			zap.L().Warn("Webhook rate limiter failed", zap.Error(err))
			continue
		}
		n.deliver(event)
	}
}

func (n *notifier) deliver(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("Error encoding message event", zap.Error(err))
		return
	}

	req, err := http.NewRequest(http.MethodPost, n.webhook, bytes.NewBuffer(body))
	if err != nil {
		zap.L().Error("Error calling web hook", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		zap.L().Error("Error calling web hook", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode <= 202) {
		zap.L().Warn("Webhook returned unexpected status",
			zap.String("status", resp.Status),
			zap.String("event", event.Type),
			zap.Int("messageId", event.Message.MessageId))
	}
}
