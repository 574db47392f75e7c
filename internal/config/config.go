package config

import "net"

type Config interface {
	Host() string
	Port() string
	Addr() string

	MaxHeadBytes() int

	LogLevel() string
	LogDevelopment() bool

	HealthEnabled() bool
	HealthPort() string
	HealthAddr() string

	BannerEnabled() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string         { return c.host }
func (c *config) Port() string         { return c.port }
func (c *config) Addr() string         { return net.JoinHostPort(c.host, c.port) }
func (c *config) MaxHeadBytes() int    { return c.maxHeadBytes }
func (c *config) LogLevel() string     { return c.logLevel }
func (c *config) LogDevelopment() bool { return c.logDevelopment }
func (c *config) HealthEnabled() bool  { return c.healthEnabled }
func (c *config) HealthPort() string   { return c.healthPort }
func (c *config) HealthAddr() string   { return net.JoinHostPort(c.host, c.healthPort) }
func (c *config) BannerEnabled() bool  { return c.bannerEnabled }
