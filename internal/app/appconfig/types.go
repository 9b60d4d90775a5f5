package appconfig

const (
	DriverDisk   = "disk"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)
