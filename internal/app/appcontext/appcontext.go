package appcontext

const (
	// EnvCLI is the standalone command line host.
	EnvCLI Env = iota
	// EnvEmbedded is a Go host embedding the client as a library.
	EnvEmbedded
)

type Env int

func (e Env) String() string {
	switch e {
	case EnvCLI:
		return "cli"
	case EnvEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
