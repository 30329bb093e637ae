package room

import (
	"blackjack-server/pkg/cardsource"

	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching players to tables
type PitBoss struct {
	provider   cardsource.Provider
	hosts      map[string]*Host
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object. Every table hosted by this pit
// boss draws its decks from the provider.
func NewPitBoss(provider cardsource.Provider) *PitBoss {
	return &PitBoss{
		provider:   provider,
		hosts:      make(map[string]*Host),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("player", client.String()).Debug("client connected")
			host, found := p.hosts[client.table.UUID]
			if !found {
				host = NewHost(p, client.table)
				host.StartShift()
				p.hosts[client.table.UUID] = host
			}

			host.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")
			host, found := p.hosts[client.table.UUID]
			if !found {
				logrus.WithField("uuid", client.table.UUID).WithField("type", "exception").Error("table not found")
				continue
			}

			if host.RemoveClient(client) {
				host.EndShift()
				delete(p.hosts, client.table.UUID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
