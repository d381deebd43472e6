//go:build windows

package sessions

// Scan on Windows is not yet implemented.
// TODO: Implement using tasklist/wmic to enumerate processes and their cwds.
func Scan(processName string) ([]LiveSession, error) {
	return nil, nil
}
