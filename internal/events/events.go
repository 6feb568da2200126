// Package events publishes reservation activity to kafka.
// Publishing is best effort: failures are logged and never surfaced
// to the caller of the lifecycle operation.
package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idudina/library-service/internal/model"
)

const (
	TypeReservationCreated  = "RESERVATION_CREATED"
	TypeReservationReturned = "RESERVATION_RETURNED"
)

type Event struct {
	EventUID      string    `json:"eventUid"`
	EventType     string    `json:"eventType"`
	UserID        int       `json:"userId"`
	ReservationID int       `json:"reservationId"`
	BookCopyID    int       `json:"bookCopyId"`
	Timestamp     time.Time `json:"timestamp"`
}

type Publisher interface {
	ReservationCreated(rsv model.Reservation)
	ReservationReturned(rsv model.Reservation)
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) ReservationCreated(rsv model.Reservation) {
	p.publish(TypeReservationCreated, rsv)
}

func (p *kafkaPublisher) ReservationReturned(rsv model.Reservation) {
	p.publish(TypeReservationReturned, rsv)
}

func (p *kafkaPublisher) publish(eventType string, rsv model.Reservation) {
	event := Event{
		EventUID:      uuid.New().String(),
		EventType:     eventType,
		UserID:        rsv.UserID,
		ReservationID: rsv.ID,
		BookCopyID:    rsv.BookCopyID,
		Timestamp:     time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.StringEncoder(data)}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Warn("publish event",
			zap.String("type", eventType),
			zap.Int("reservationId", rsv.ID),
			zap.Error(err))
	}
}

type nopPublisher struct{}

// NewNop is used when no kafka brokers are configured.
func NewNop() Publisher { return nopPublisher{} }

func (nopPublisher) ReservationCreated(model.Reservation)  {}
func (nopPublisher) ReservationReturned(model.Reservation) {}
