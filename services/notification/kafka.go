// File: services/notification/kafka.go
package notification

import (
	"encoding/json"
	"time"

	"luxesalon/models"
	"luxesalon/utils"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaSink publishes booking events to a Kafka topic through an async
// producer. Failures are drained to the logger and never reach the caller.
type KafkaSink struct {
	producer sarama.AsyncProducer
	topic    string

	Now func() time.Time
}

// NewKafkaSink builds the sink and starts draining producer errors in the
// background.
func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	sink := &KafkaSink{
		producer: producer,
		topic:    topic,
		Now:      time.Now,
	}

	go func() {
		for perr := range producer.Errors() {
			utils.GetLogger().Warn("kafka notification dropped", zap.Error(perr.Err))
		}
	}()

	return sink, nil
}

func (s *KafkaSink) Publish(kind models.NotificationKind, date, timeOfDay string) {
	event := struct {
		Kind models.NotificationKind `json:"kind"`
		Date string                  `json:"date"`
		Time string                  `json:"time"`
		At   time.Time               `json:"at"`
	}{Kind: kind, Date: date, Time: timeOfDay, At: s.Now()}

	payload, err := json.Marshal(event)
	if err != nil {
		utils.GetLogger().Warn("kafka notification dropped", zap.Error(err))
		return
	}

	s.producer.Input() <- &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(string(kind)),
		Value: sarama.ByteEncoder(payload),
	}
}

// Close shuts the underlying producer down.
func (s *KafkaSink) Close() error {
	return s.producer.Close()
}
