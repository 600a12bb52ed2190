package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<API REQUEST_DUMP="true">
  <CONTEXT>
    <PORT>8080</PORT>
    <HOST>0.0.0.0</HOST>
    <TIME_ZONE>UTC</TIME_ZONE>
  </CONTEXT>
  <AUTHENTICATION>
    <ENABLE_TOKEN_AUTH>true</ENABLE_TOKEN_AUTH>
    <SESSION_TIMEOUT>30</SESSION_TIMEOUT>
    <TOKEN_SECRET>xml-secret</TOKEN_SECRET>
  </AUTHENTICATION>
  <DB>
    <DRIVER>postgres</DRIVER>
    <HOST>localhost</HOST>
    <PORT>5432</PORT>
    <SSL_MODE>disable</SSL_MODE>
    <NAMES CINEMA="yourscinema"/>
    <USERNAME>cinema</USERNAME>
    <PASSWORD TYPE="plain">xml-password</PASSWORD>
    <POOL>
      <MAX_OPEN_CONNS>10</MAX_OPEN_CONNS>
      <MAX_IDLE_CONNS>5</MAX_IDLE_CONNS>
      <CONN_MAX_LIFETIME>60</CONN_MAX_LIFETIME>
    </POOL>
  </DB>
  <LOGGING CONSOLE="true">
    <LEVEL>debug</LEVEL>
    <DIR>logs</DIR>
  </LOGGING>
  <RECOMMENDATION>
    <LIMIT>3</LIMIT>
  </RECOMMENDATION>
  <RATE_LIMIT ENABLED="true">
    <RPS>5</RPS>
    <BURST>10</BURST>
  </RATE_LIMIT>
</API>`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	assert.True(t, c.RequestDump)
	assert.Equal(t, "0.0.0.0:8080", c.Addr())
	assert.Equal(t, 30*time.Minute, c.SessionTTL())
	assert.Equal(t, 24*time.Hour, c.TokenTTL())
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout())
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, "yourscinema", c.DB.Names.Cinema)
	assert.Equal(t, "plain", c.DB.Password.Type)
	assert.Equal(t, "xml-password", c.DB.Password.Value)
	assert.Equal(t, 10, c.DB.Pool.MaxOpenConns)
	assert.True(t, c.Logging.Console)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 3, c.Recommendation.Limit)
	assert.True(t, c.RateLimit.Enabled)
	assert.Equal(t, 5.0, c.RateLimit.RPS)
	assert.Equal(t, "UTC", c.Location().String())
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("APP_PORT", "9090")

	c, err := Parse([]byte(sampleXML))
	require.NoError(t, err)

	assert.Equal(t, "env-password", c.DB.Password.Value)
	assert.Equal(t, "env-secret", c.Authentication.TokenSecret)
	assert.Equal(t, 9090, c.Context.Port)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "missing port",
			xml:  `<API><DB><DRIVER>sqlite</DRIVER><PATH>x.db</PATH></DB></API>`,
		},
		{
			name: "unknown driver",
			xml:  `<API><CONTEXT><PORT>80</PORT></CONTEXT><DB><DRIVER>mysql</DRIVER></DB></API>`,
		},
		{
			name: "sqlite without path",
			xml:  `<API><CONTEXT><PORT>80</PORT></CONTEXT><DB><DRIVER>sqlite</DRIVER></DB></API>`,
		},
		{
			name: "token auth without secret",
			xml: `<API><CONTEXT><PORT>80</PORT></CONTEXT>
				<AUTHENTICATION><ENABLE_TOKEN_AUTH>true</ENABLE_TOKEN_AUTH></AUTHENTICATION>
				<DB><DRIVER>sqlite</DRIVER><PATH>x.db</PATH></DB></API>`,
		},
		{
			name: "bad log level",
			xml: `<API><CONTEXT><PORT>80</PORT></CONTEXT>
				<DB><DRIVER>sqlite</DRIVER><PATH>x.db</PATH></DB>
				<LOGGING><LEVEL>verbose</LEVEL></LOGGING></API>`,
		},
		{
			name: "unknown time zone",
			xml: `<API><CONTEXT><PORT>80</PORT><TIME_ZONE>Mars/Olympus</TIME_ZONE></CONTEXT>
				<DB><DRIVER>sqlite</DRIVER><PATH>x.db</PATH></DB></API>`,
		},
		{
			name: "malformed xml",
			xml:  `<API><CONTEXT>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.xml))
			assert.Error(t, err)
		})
	}
}

func TestParseMinimalSQLite(t *testing.T) {
	c, err := Parse([]byte(`<API><CONTEXT><PORT>8080</PORT></CONTEXT><DB><DRIVER>sqlite</DRIVER><PATH>cinema.db</PATH></DB></API>`))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, "cinema.db", c.DB.Path)
	assert.Equal(t, 0, c.Recommendation.Limit)
	assert.False(t, c.Authentication.EnableTokenAuth)
	assert.Equal(t, time.UTC, c.Location())
}
