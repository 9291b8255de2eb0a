package main

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"YAML configuration path"`

	Match  *MatchCmd  `command:"match"  description:"Print the handles matching each TOPIC"`
	Topics *TopicsCmd `command:"topics" description:"List registered topics"`
	Serve  *ServeCmd  `command:"serve"  description:"Bridge topics to NATS and expose metrics"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "match":
		o.Match = &MatchCmd{}
	case "topics":
		o.Topics = &TopicsCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}

// TreeSource selects the registrations a command operates on.
type TreeSource struct {
	Tree string   `short:"t" long:"tree" description:"YAML tree file (children/subscriptions)"`
	Subs []string `short:"s" long:"sub" description:"Extra registration as TOPIC=HANDLE (repeatable)"`
}
