package console

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// Action is the work bound to one menu token.
type Action func() error

// Menu is a token-driven loop over a Console.
type Menu struct {
	// Name identifies the menu in logs.
	Name string
	// Render draws the menu before every read.
	Render func(c *Console)
	// Actions maps a normalized token to its action.
	Actions map[string]Action
	// Quit ends the loop immediately when typed.
	Quit string
	// Farewell, if set, is printed on Quit.
	Farewell string
	// Invalid is printed for tokens with no action.
	Invalid string
	// Normalize is applied to every raw line before lookup.
	Normalize func(string) string

	Logger *zap.Logger
}

// Run loops until the quit token or end of input. Action errors are printed
// and the loop continues; only console read failures are returned.
func (m *Menu) Run(c *Console) error {
	log := m.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("menu", m.Name))

	for {
		if m.Render != nil {
			m.Render(c)
		}
		line, err := c.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Debug("input closed")
			return nil
		}
		if err != nil {
			return err
		}

		token := line
		if m.Normalize != nil {
			token = m.Normalize(line)
		}
		if token == m.Quit {
			if m.Farewell != "" {
				c.Println(m.Farewell)
			}
			log.Debug("quit")
			return nil
		}

		action, ok := m.Actions[token]
		if !ok {
			log.Debug("unknown token", zap.String("token", token))
			c.Println(m.Invalid)
			continue
		}

		log.Debug("dispatch", zap.String("token", token))
		if err := action(); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("input closed during action", zap.String("token", token))
				return nil
			}
			log.Debug("action failed", zap.String("token", token), zap.Error(err))
			c.Error(err)
		}
	}
}
