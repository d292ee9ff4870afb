package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"gopkg.in/yaml.v3"
)

// EmptyBinding is the binding of a protocol that defines no properties at this level.
type EmptyBinding struct {
	BindingVersion *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// ServerBindings maps protocol names to protocol specific information for a server.
type ServerBindings struct {
	HTTP         *EmptyBinding       `key:"http"`
	WS           *EmptyBinding       `key:"ws"`
	Kafka        *KafkaServerBinding `key:"kafka"`
	AnypointMQ   *yaml.Node          `key:"anypointmq"`
	AMQP         *EmptyBinding       `key:"amqp"`
	AMQP1        *yaml.Node          `key:"amqp1"`
	MQTT         *MQTTServerBinding  `key:"mqtt"`
	MQTT5        *yaml.Node          `key:"mqtt5"`
	NATS         *EmptyBinding       `key:"nats"`
	JMS          *yaml.Node          `key:"jms"`
	SNS          *yaml.Node          `key:"sns"`
	SQS          *yaml.Node          `key:"sqs"`
	STOMP        *yaml.Node          `key:"stomp"`
	Redis        *yaml.Node          `key:"redis"`
	Mercure      *yaml.Node          `key:"mercure"`
	IBMMQ        *IBMMQServerBinding `key:"ibmmq"`
	GooglePubSub *yaml.Node          `key:"googlepubsub"`
	Pulsar       *yaml.Node          `key:"pulsar"`
	Solace       *yaml.Node          `key:"solace"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// KafkaServerBinding is the Kafka specific information of a server.
type KafkaServerBinding struct {
	SchemaRegistryURL    *string `key:"schemaRegistryUrl"`
	SchemaRegistryVendor *string `key:"schemaRegistryVendor"`
	BindingVersion       *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// MQTTServerBinding is the MQTT specific information of a server.
type MQTTServerBinding struct {
	ClientID       *string       `key:"clientId"`
	CleanSession   *bool         `key:"cleanSession"`
	LastWill       *MQTTLastWill `key:"lastWill"`
	KeepAlive      *int64        `key:"keepAlive"`
	BindingVersion *string       `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// MQTTLastWill is the last will and testament registered by an MQTT client.
type MQTTLastWill struct {
	Topic   *string `key:"topic"`
	QoS     *int64  `key:"qos"`
	Message *string `key:"message"`
	Retain  *bool   `key:"retain"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// IBMMQServerBinding is the IBM MQ specific information of a server.
type IBMMQServerBinding struct {
	GroupID              *string `key:"groupId"`
	CCDTQueueManagerName *string `key:"ccdtQueueManagerName"`
	CipherSpec           *string `key:"cipherSpec"`
	MultiEndpointServer  *bool   `key:"multiEndpointServer"`
	HeartBeatInterval    *int64  `key:"heartBeatInterval"`
	BindingVersion       *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// ChannelBindings maps protocol names to protocol specific information for a channel.
type ChannelBindings struct {
	HTTP         *EmptyBinding        `key:"http"`
	WS           *WSChannelBinding    `key:"ws"`
	Kafka        *EmptyBinding        `key:"kafka"`
	AnypointMQ   *yaml.Node           `key:"anypointmq"`
	AMQP         *AMQPChannelBinding  `key:"amqp"`
	AMQP1        *yaml.Node           `key:"amqp1"`
	MQTT         *EmptyBinding        `key:"mqtt"`
	MQTT5        *yaml.Node           `key:"mqtt5"`
	NATS         *EmptyBinding        `key:"nats"`
	JMS          *yaml.Node           `key:"jms"`
	SNS          *yaml.Node           `key:"sns"`
	SQS          *yaml.Node           `key:"sqs"`
	STOMP        *yaml.Node           `key:"stomp"`
	Redis        *yaml.Node           `key:"redis"`
	Mercure      *yaml.Node           `key:"mercure"`
	IBMMQ        *IBMMQChannelBinding `key:"ibmmq"`
	GooglePubSub *yaml.Node           `key:"googlepubsub"`
	Pulsar       *yaml.Node           `key:"pulsar"`
	Solace       *yaml.Node           `key:"solace"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// WSChannelBinding describes the WebSockets handshake of a channel.
type WSChannelBinding struct {
	// Method is the HTTP method used to establish the connection, GET or POST.
	Method         *string              `key:"method"`
	Query          *ReferenceOr[Schema] `key:"query"`
	Headers        *ReferenceOr[Schema] `key:"headers"`
	BindingVersion *string              `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// AMQPChannelBinding describes the AMQP 0-9-1 exchange or queue behind a channel.
type AMQPChannelBinding struct {
	// Is is either queue or routingKey (the default).
	Is             *string                     `key:"is"`
	Exchange       *AMQPChannelBindingExchange `key:"exchange"`
	Queue          *AMQPChannelBindingQueue    `key:"queue"`
	BindingVersion *string                     `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// AMQPChannelBindingExchange holds the exchange properties when Is is routingKey.
type AMQPChannelBindingExchange struct {
	Name       *string `key:"name"`
	Type       *string `key:"type"`
	Durable    *bool   `key:"durable"`
	AutoDelete *bool   `key:"autoDelete"`
	VHost      *string `key:"vhost"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// AMQPChannelBindingQueue holds the queue properties when Is is queue.
type AMQPChannelBindingQueue struct {
	Name       *string `key:"name"`
	Durable    *bool   `key:"durable"`
	Exclusive  *bool   `key:"exclusive"`
	AutoDelete *bool   `key:"autoDelete"`
	VHost      *string `key:"vhost"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// IBMMQChannelBinding maps a channel to an IBM MQ queue or topic.
type IBMMQChannelBinding struct {
	DestinationType *string                   `key:"destinationType"`
	Queue           *IBMMQChannelBindingQueue `key:"queue"`
	Topic           *IBMMQChannelBindingTopic `key:"topic"`
	MaxMsgLength    *int64                    `key:"maxMsgLength"`
	BindingVersion  *string                   `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type IBMMQChannelBindingQueue struct {
	ObjectName    string `key:"objectName" required:"true"`
	IsPartitioned *bool  `key:"isPartitioned"`
	Exclusive     *bool  `key:"exclusive"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type IBMMQChannelBindingTopic struct {
	String           *string `key:"string"`
	ObjectName       *string `key:"objectName"`
	DurablePermitted *bool   `key:"durablePermitted"`
	LastMsgRetained  *bool   `key:"lastMsgRetained"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// OperationBindings maps protocol names to protocol specific information for an operation.
type OperationBindings struct {
	HTTP         *HTTPOperationBinding  `key:"http"`
	WS           *EmptyBinding          `key:"ws"`
	Kafka        *KafkaOperationBinding `key:"kafka"`
	AnypointMQ   *yaml.Node             `key:"anypointmq"`
	AMQP         *AMQPOperationBinding  `key:"amqp"`
	AMQP1        *yaml.Node             `key:"amqp1"`
	MQTT         *MQTTOperationBinding  `key:"mqtt"`
	MQTT5        *yaml.Node             `key:"mqtt5"`
	NATS         *NATSOperationBinding  `key:"nats"`
	JMS          *yaml.Node             `key:"jms"`
	SNS          *yaml.Node             `key:"sns"`
	SQS          *yaml.Node             `key:"sqs"`
	STOMP        *yaml.Node             `key:"stomp"`
	Redis        *yaml.Node             `key:"redis"`
	Mercure      *yaml.Node             `key:"mercure"`
	IBMMQ        *EmptyBinding          `key:"ibmmq"`
	GooglePubSub *yaml.Node             `key:"googlepubsub"`
	Pulsar       *yaml.Node             `key:"pulsar"`
	Solace       *yaml.Node             `key:"solace"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// HTTPOperationBinding describes an HTTP request of an operation.
type HTTPOperationBinding struct {
	// Type is request or response.
	Type           string               `key:"type" required:"true"`
	Method         *string              `key:"method"`
	Query          *ReferenceOr[Schema] `key:"query"`
	BindingVersion *string              `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type KafkaOperationBinding struct {
	GroupID        *ReferenceOr[Schema] `key:"groupId"`
	ClientID       *ReferenceOr[Schema] `key:"clientId"`
	BindingVersion *string              `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type AMQPOperationBinding struct {
	Expiration     *int64   `key:"expiration"`
	UserID         *string  `key:"userId"`
	CC             []string `key:"cc"`
	Priority       *int64   `key:"priority"`
	DeliveryMode   *int64   `key:"deliveryMode"`
	Mandatory      *bool    `key:"mandatory"`
	BCC            []string `key:"bcc"`
	ReplyTo        *string  `key:"replyTo"`
	Timestamp      *bool    `key:"timestamp"`
	Ack            *bool    `key:"ack"`
	BindingVersion *string  `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type MQTTOperationBinding struct {
	QoS            *int64  `key:"qos"`
	Retain         *bool   `key:"retain"`
	BindingVersion *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type NATSOperationBinding struct {
	Queue          *string `key:"queue"`
	BindingVersion *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// MessageBindings maps protocol names to protocol specific information for a message.
type MessageBindings struct {
	HTTP         *HTTPMessageBinding  `key:"http"`
	WS           *EmptyBinding        `key:"ws"`
	Kafka        *KafkaMessageBinding `key:"kafka"`
	AnypointMQ   *yaml.Node           `key:"anypointmq"`
	AMQP         *AMQPMessageBinding  `key:"amqp"`
	AMQP1        *yaml.Node           `key:"amqp1"`
	MQTT         *EmptyBinding        `key:"mqtt"`
	MQTT5        *yaml.Node           `key:"mqtt5"`
	NATS         *EmptyBinding        `key:"nats"`
	JMS          *yaml.Node           `key:"jms"`
	SNS          *yaml.Node           `key:"sns"`
	SQS          *yaml.Node           `key:"sqs"`
	STOMP        *yaml.Node           `key:"stomp"`
	Redis        *yaml.Node           `key:"redis"`
	Mercure      *yaml.Node           `key:"mercure"`
	IBMMQ        *IBMMQMessageBinding `key:"ibmmq"`
	GooglePubSub *yaml.Node           `key:"googlepubsub"`
	Pulsar       *yaml.Node           `key:"pulsar"`
	Solace       *yaml.Node           `key:"solace"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type HTTPMessageBinding struct {
	Headers        *ReferenceOr[Schema] `key:"headers"`
	BindingVersion *string              `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type KafkaMessageBinding struct {
	Key            *ReferenceOr[Schema] `key:"key"`
	BindingVersion *string              `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type AMQPMessageBinding struct {
	ContentEncoding *string `key:"contentEncoding"`
	MessageType     *string `key:"messageType"`
	BindingVersion  *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type IBMMQMessageBinding struct {
	// Type is string, jms or binary.
	Type           *string `key:"type"`
	Headers        *string `key:"headers"`
	Description    *string `key:"description"`
	Expiry         *int64  `key:"expiry"`
	BindingVersion *string `key:"bindingVersion"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}
