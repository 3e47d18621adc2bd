package config

// Map of job names to job functions. Jobs in cron/jobs self-register
// through the cron registry; this map is for deployment-local
// overrides wired directly into config.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	// Add more jobs here
}
