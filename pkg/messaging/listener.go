package messaging

import (
	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	err = ch.QueueBind(q.Name, name, name, false, nil)
	if err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// HandleDeliveries acks every delivery the handler accepts. A failing
// delivery is rejected without requeue and processing continues.
func HandleDeliveries(msgs <-chan amqp.Delivery, handle func(amqp.Delivery) error) {
	for d := range msgs {
		if err := handle(d); err != nil {
			logrus.WithError(err).Warn("error processing message")
			if nackErr := d.Nack(false, false); nackErr != nil {
				logrus.WithError(nackErr).Warn("could not reject message")
			}
			continue
		}
		if err := d.Ack(false); err != nil {
			logrus.WithError(err).Warn("could not ack message")
		}
	}
}

func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, handle func(amqp.Delivery) error) error {
	msgs, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}
	go func() {
		defer ch.Close()
		HandleDeliveries(msgs, handle)
	}()
	return nil
}

// DecodeDataChanged decodes the body of a DataChanged delivery.
func DecodeDataChanged(body []byte) (DataChangedMessage, error) {
	msg := DataChangedMessage{}
	err := sonic.ConfigStd.Unmarshal(body, &msg)
	return msg, err
}

// ListenForDataChanges calls onChange for every DataChanged message.
func ListenForDataChanges(conn *amqp.Connection, prefix string, onChange func(DataChangedMessage)) error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err = DefineTopic(ch, prefix, DataChanged); err != nil {
		ch.Close()
		return err
	}
	return ListenToTopic(ch, prefix, DataChanged, func(d amqp.Delivery) error {
		msg, err := DecodeDataChanged(d.Body)
		if err != nil {
			return err
		}
		onChange(msg)
		return nil
	})
}
