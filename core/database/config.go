package database

// Config holds configuration for the mirror database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite, mongo).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name. For sqlite it is the file path (or :memory:).
	Name string `mapstructure:"name" default:"hotel_indexer.db"`
	// URI is the connection string used by the mongo driver.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// TimeoutSeconds bounds connection setup and every query issued by the stores.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverMySQL, DriverSQLite, DriverMongo:
		return true
	default:
		return false
	}
}

// IsSQL reports whether the driver is served through GORM.
func (c Config) IsSQL() bool {
	return c.Driver == DriverMySQL || c.Driver == DriverSQLite
}
