package container

// Options is the service configuration, consumed by humacli for the
// server binary and filled from the environment for the consumer.
type Options struct {
	Port        int    `default:"8888"                            help:"Port to listen on"                                        short:"p"`
	BaseURL     string `default:""                                help:"Base URL for generated short links (defaults to http://localhost:<port>)"`
	CodeLength  int    `default:"6"                               help:"Length of generated short codes"                          short:"c"`
	MaxRetries  int    `default:"3"                               help:"Allocation attempts before reporting the space exhausted"`
	Store       string `default:"redis"                           enum:"redis,postgres,memory"                                    help:"Mapping store backend"`
	RedisAddr   string `default:"localhost:6379"                  help:"Redis server address"                                     short:"r"`
	PostgresURL string `default:"postgres://localhost:5432/tinyurl" help:"Postgres connection string (store=postgres)"`
	CacheTTL    int    `default:"3600"                            help:"Mapping cache TTL in seconds (store=postgres)"`
	MongoURI    string `default:"mongodb://localhost:27017"       help:"MongoDB connection string"`
	MongoDB     string `default:"tinyurl"                         help:"MongoDB database name"`
	LogFormat   string `default:"console"                         enum:"console,json"                                             help:"Log output format"`
	EnableDebug bool   `default:"false"                           help:"Expose raw key-value debug routes"`

	// InlineClicks records clicks in-process instead of publishing them
	// to the Redis stream. Useful for single-binary deployments and the
	// memory backend.
	InlineClicks bool `default:"false" help:"Record clicks in-process instead of via the stream"`
}
