package fakelib

import (
	"errors"
	"fmt"
	"io"

	"github.com/hsiuhsiu/ctmsg-go/pkg/ctmsg"
	"gopkg.in/yaml.v3"
)

// Fixture is one message to raise. Exactly one of Server and Client is set.
// Expect, when set, is the status the callback must answer.
type Fixture struct {
	Server *ctmsg.ServerMessage `yaml:"server,omitempty"`
	Client *ctmsg.ClientMessage `yaml:"client,omitempty"`
	Expect *ctmsg.Status        `yaml:"expect,omitempty"`
}

// Check compares got against the fixture's expected status.
func (fx Fixture) Check(got ctmsg.Status) error {
	if fx.Expect == nil || *fx.Expect == got {
		return nil
	}
	return fmt.Errorf("fakelib: callback answered %s, want %s", got, *fx.Expect)
}

type fixtureFile struct {
	Messages []Fixture `yaml:"messages"`
}

// LoadFixtures reads a YAML document of the form
//
//	messages:
//	  - server: {msgnumber: 5701, severity: 10, text: "Changed database context to 'master'."}
//	  - client: {msgnumber: 16843163, severity: 1, text: "ct_connect(): network packet layer: internal net library error"}
//	    expect: CS_SUCCEED
func LoadFixtures(r io.Reader) ([]Fixture, error) {
	var f fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("fakelib: decode fixtures: %w", err)
	}

	for i, fx := range f.Messages {
		if (fx.Server == nil) == (fx.Client == nil) {
			return nil, fmt.Errorf("fakelib: fixture %d: exactly one of server or client must be set", i)
		}
	}
	return f.Messages, nil
}

// Replay raises every fixture in order and returns the status of each
// callback. The fixtures must have passed LoadFixtures' validation.
func (l *Lib) Replay(fixtures []Fixture) []ctmsg.Status {
	out := make([]ctmsg.Status, len(fixtures))
	for i, fx := range fixtures {
		if fx.Server != nil {
			out[i] = l.RaiseServer(&ServerRecord{Msg: *fx.Server})
		} else {
			out[i] = l.RaiseClient(&ClientRecord{Msg: *fx.Client})
		}
	}
	return out
}
