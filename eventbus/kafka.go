package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"startup-validator/logger"
)

// KafkaPublisher publishes events through a confluent-kafka-go producer.
type KafkaPublisher struct {
	producer    *kafka.Producer
	topicPrefix string
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a producer against the given bootstrap servers.
// topicPrefix is prepended to every topic name ("validator.report.created").
func NewKafkaPublisher(brokers, topicPrefix string) (*KafkaPublisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           5,
	})
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	// Drain delivery reports so the producer queue never blocks.
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("kafka delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaPublisher{producer: p, topicPrefix: topicPrefix}, nil
}

// Publish sends one event to the prefixed topic.
func (k *KafkaPublisher) Publish(ctx context.Context, topic string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	fullTopic := topic
	if k.topicPrefix != "" {
		fullTopic = k.topicPrefix + "." + topic
	}

	err = k.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &fullTopic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, nil)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", fullTopic, err)
	}
	return nil
}

// Close flushes outstanding messages and shuts the producer down.
func (k *KafkaPublisher) Close() {
	if k.producer == nil {
		return
	}
	if remaining := k.producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("kafka close left %d messages unflushed", remaining)
	}
	k.producer.Close()
}
