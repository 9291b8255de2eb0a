package main

import (
	"fmt"
	"strings"
)

// TopicsCmd prints every registered topic with its handles, sorted by topic.
type TopicsCmd struct {
	TreeSource

	Stats bool `long:"stats" description:"Print node, topic and registration counts last"`
}

func (c *TopicsCmd) Execute(_ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := buildVault(cfg, c.TreeSource)
	if err != nil {
		return err
	}

	for _, topic := range v.Topics() {
		fmt.Fprintf(stdout, "%s\t%s\n", topic, strings.Join(v.Subscriptions(topic), ","))
	}

	if c.Stats {
		s := v.Stats()
		fmt.Fprintf(stdout, "nodes=%d topics=%d subscriptions=%d\n", s.Nodes, s.Topics, s.Subscriptions)
	}

	return nil
}
