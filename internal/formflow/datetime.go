package formflow

import "time"

// localInputLayout matches the value format of a datetime-local input:
// minute precision, no zone designator.
const localInputLayout = "2006-01-02T15:04"

// ToLocalInput converts a server RFC3339 UTC timestamp to the local
// datetime-input value for the given location. A "2025-06-01T10:00:00.000Z"
// departure shown to a UTC+2 client becomes "2025-06-01T12:00".
func ToLocalInput(iso string, loc *time.Location) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", err
	}
	return t.In(loc).Format(localInputLayout), nil
}

// FromLocalInput converts a datetime-input value entered in the given
// location back to the RFC3339 UTC form the server expects.
func FromLocalInput(value string, loc *time.Location) (string, error) {
	t, err := time.ParseInLocation(localInputLayout, value, loc)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
