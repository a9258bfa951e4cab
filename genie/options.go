package genie

// Options holds the model parameters shared by genie backends.
type Options struct {
	model       string
	temperature float32
	maxTokens   int
}

// Option is a function type for configuring genie Options.
type Option func(*Options)

func WithModel(model string) Option {
	return func(o *Options) {
		o.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(o *Options) {
		o.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.maxTokens = maxTokens
	}
}

func (o Options) Model() string {
	return o.model
}

func (o Options) Temperature() float32 {
	return o.temperature
}

func (o Options) MaxTokens() int {
	return o.maxTokens
}
