package ctmsg

import "github.com/hsiuhsiu/ctmsg-go/internal/bindings"

// SeverityInform is the severity ASE attaches to purely informational server
// messages, such as database context changes.
const SeverityInform = 10

// Message is implemented by ServerMessage and ClientMessage.
type Message interface {
	MessageNumber() uint64
	MessageSeverity() int64
	Content() string
}

// ServerMessage is a message sent from the server to the client.
type ServerMessage struct {
	MsgNumber uint64 `yaml:"msgnumber"`
	State     int64  `yaml:"state"`
	Severity  int64  `yaml:"severity"`
	Text      string `yaml:"text"`
	Server    string `yaml:"server"`
	Proc      string `yaml:"proc"`
	Line      int64  `yaml:"line"`
	SQLState  string `yaml:"sqlstate"`
}

func serverMessageFromFields(f bindings.ServerFields) ServerMessage {
	return ServerMessage{
		MsgNumber: f.MsgNumber,
		State:     f.State,
		Severity:  f.Severity,
		Text:      f.Text,
		Server:    f.Server,
		Proc:      f.Proc,
		Line:      f.Line,
		SQLState:  f.SQLState,
	}
}

// MessageNumber returns the message number of a server message.
func (msg ServerMessage) MessageNumber() uint64 {
	return msg.MsgNumber
}

// MessageSeverity returns the severity of a server message.
func (msg ServerMessage) MessageSeverity() int64 {
	return msg.Severity
}

// Content returns the text of a server message.
func (msg ServerMessage) Content() string {
	return msg.Text
}

// ClientMessage is a message generated by Client-Library itself.
type ClientMessage struct {
	Severity  int64  `yaml:"severity"`
	MsgNumber uint64 `yaml:"msgnumber"`
	Text      string `yaml:"text"`
	OSNumber  int64  `yaml:"osnumber"`
	OSString  string `yaml:"osstring"`
	Status    int64  `yaml:"status"`
	SQLState  string `yaml:"sqlstate"`
}

func clientMessageFromFields(f bindings.ClientFields) ClientMessage {
	return ClientMessage{
		Severity:  f.Severity,
		MsgNumber: f.MsgNumber,
		Text:      f.Text,
		OSNumber:  f.OSNumber,
		OSString:  f.OSString,
		Status:    f.Status,
		SQLState:  f.SQLState,
	}
}

// MessageNumber returns the message number of a client message.
func (msg ClientMessage) MessageNumber() uint64 {
	return msg.MsgNumber
}

// MessageSeverity returns the severity of a client message.
func (msg ClientMessage) MessageSeverity() int64 {
	return msg.Severity
}

// Content returns the text of a client message.
func (msg ClientMessage) Content() string {
	return msg.Text
}

// DecodeServerRecord copies a native server message record.
func DecodeServerRecord(rec bindings.ServerRecord) (ServerMessage, error) {
	f, err := bindings.DecodeServerRecord(rec)
	if err != nil {
		return ServerMessage{}, err
	}
	return serverMessageFromFields(f), nil
}

// DecodeClientRecord copies a native client message record.
func DecodeClientRecord(rec bindings.ClientRecord) (ClientMessage, error) {
	f, err := bindings.DecodeClientRecord(rec)
	if err != nil {
		return ClientMessage{}, err
	}
	return clientMessageFromFields(f), nil
}
