package socketio

import (
	"bytes"
	"encoding/json"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

// engine.io packet types.
const (
	engineOpen    byte = '0'
	engineClose   byte = '1'
	enginePing    byte = '2'
	enginePong    byte = '3'
	engineMessage byte = '4'
	engineNoop    byte = '6'
)

// socket.io packet types, carried inside an engine.io message.
const (
	socketConnect      byte = '0'
	socketDisconnect   byte = '1'
	socketEvent        byte = '2'
	socketAck          byte = '3'
	socketConnectError byte = '4'
)

type openPayload struct {
	SID          string `json:"sid"`
	PingInterval int    `json:"pingInterval"`
	PingTimeout  int    `json:"pingTimeout"`
}

type packet struct {
	engine byte
	socket byte
	data   []byte
}

func parsePacket(raw []byte) (packet, error) {
	if len(raw) == 0 {
		return packet{}, fmt.Errorf("empty packet")
	}
	p := packet{engine: raw[0], data: raw[1:]}
	if p.engine == engineMessage {
		if len(p.data) == 0 {
			return packet{}, fmt.Errorf("message packet without socket type")
		}
		p.socket = p.data[0]
		p.data = p.data[1:]
	}
	return p, nil
}

func parseOpen(p packet) (openPayload, error) {
	if p.engine != engineOpen {
		return openPayload{}, fmt.Errorf("expected open packet, got %q", p.engine)
	}
	var open openPayload
	if err := sonic.Unmarshal(p.data, &open); err != nil {
		return openPayload{}, fmt.Errorf("decode open packet: %w", err)
	}
	return open, nil
}

func controlPacket(engine byte, socket ...byte) []byte {
	return append([]byte{engine}, socket...)
}

// encodeEvent builds 42["topic",args...].
func encodeEvent(topic string, args []any) ([]byte, error) {
	body, err := sonic.Marshal(append([]any{topic}, args...))
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", topic, err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_ = buf.WriteByte(engineMessage)
	_ = buf.WriteByte(socketEvent)
	_, _ = buf.Write(body)
	return append([]byte(nil), buf.B...), nil
}

// decodeEvent reads the body of an event packet. An optional namespace
// ("/ns,") and ack id are skipped. A single argument is returned as is;
// several are returned as a JSON array.
func decodeEvent(data []byte) (string, []byte, error) {
	start := bytes.IndexByte(data, '[')
	if start < 0 {
		return "", nil, fmt.Errorf("event packet without array body")
	}

	var items []json.RawMessage
	if err := sonic.Unmarshal(data[start:], &items); err != nil {
		return "", nil, fmt.Errorf("decode event packet: %w", err)
	}
	if len(items) == 0 {
		return "", nil, fmt.Errorf("event packet without name")
	}

	var topic string
	if err := sonic.Unmarshal(items[0], &topic); err != nil {
		return "", nil, fmt.Errorf("decode event name: %w", err)
	}

	switch len(items) {
	case 1:
		return topic, nil, nil
	case 2:
		return topic, []byte(items[1]), nil
	default:
		rest, err := sonic.Marshal(items[1:])
		if err != nil {
			return "", nil, fmt.Errorf("encode event args: %w", err)
		}
		return topic, rest, nil
	}
}
