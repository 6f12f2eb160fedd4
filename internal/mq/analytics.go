package mq

import (
	"encoding/json"
	"time"

	zmq "github.com/pebbe/zmq4"
)

// QuoteEvent is emitted for every storefront price quote, so campaign
// tooling can see what sizes and tiers people actually ask for.
type QuoteEvent struct {
	QuoteID   string  `json:"quote_id"`
	Tier      string  `json:"tier"`
	Letters   int     `json:"letters"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

// AnalyticsPublisher fans quote events out over a ZMQ PUB socket. A nil
// publisher drops events, so the storefront runs fine without analytics.
type AnalyticsPublisher struct {
	socket *zmq.Socket
}

// NewAnalyticsPublisher creates and binds the PUB socket.
func NewAnalyticsPublisher(bindAddr string) (*AnalyticsPublisher, error) {
	sock, err := zmq.NewSocket(zmq.PUB)
	if err != nil {
		return nil, err
	}
	if err := sock.Bind(bindAddr); err != nil {
		return nil, err
	}
	return &AnalyticsPublisher{socket: sock}, nil
}

// PublishQuote serializes and emits one quote event.
func (p *AnalyticsPublisher) PublishQuote(ev QuoteEvent) error {
	if p == nil {
		return nil
	}
	ev.Timestamp = time.Now().Unix()

	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = p.socket.SendBytes(payload, 0)
	return err
}

// Close releases the underlying socket.
func (p *AnalyticsPublisher) Close() {
	if p != nil {
		p.socket.Close()
	}
}
