package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-service/service"
)

type ListenerType int

const (
	ListenerTypeTelnet ListenerType = iota
	ListenerTypeSSH
	ListenerTypeConsole
)

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "telnet":
		*lt = ListenerTypeTelnet
	case "ssh":
		*lt = ListenerTypeSSH
	case "console":
		*lt = ListenerTypeConsole
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	switch cl.Protocol {
	case ListenerTypeTelnet, ListenerTypeSSH:
		if cl.Port == 0 {
			el.Add(fmt.Errorf("port must be set to a positive integer"))
		}
	case ListenerTypeConsole:
		if cl.Port != 0 {
			el.Add(fmt.Errorf("console listener does not take a port"))
		}
	}

	if cl.HostKeyPath != "" && cl.Protocol != ListenerTypeSSH {
		el.Add(fmt.Errorf("host_key_path is only used by ssh listeners"))
	}

	return el.Err()
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	switch cl.Protocol {
	case ListenerTypeTelnet:
		return listener.NewTelnetListener(cl.Port, cm), nil
	case ListenerTypeSSH:
		hostKey, err := listener.LoadOrGenerateHostKey(cl.HostKeyPath)
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.Port, cm, hostKey), nil
	case ListenerTypeConsole:
		return listener.NewConsoleListener(os.Stdin, os.Stdout, cm), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", cl.Protocol)
	}
}
