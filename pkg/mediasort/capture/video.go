package capture

import (
	"os"
	"time"

	mp4 "github.com/abema/go-mp4"
)

// appleEpochOffset is the number of seconds between the Apple/Mac epoch
// (1904-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
// ISO BMFF creation times count from the Apple epoch.
const appleEpochOffset = 2082844800

// mvhdBackend reads the creation time from the moov/mvhd box of an
// ISO BMFF container (MP4, MOV, 3GP). Non-BMFF containers such as MKV
// or AVI carry no mvhd box and yield no result.
type mvhdBackend struct{}

// captureDate returns the container creation time. An unsupported or
// corrupt container, a missing mvhd box, or a zero creation time yields
// no result.
func (mvhdBackend) captureDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	boxes, err := mp4.ExtractBoxesWithPayload(f, nil, []mp4.BoxPath{
		{mp4.BoxTypeMoov(), mp4.BoxTypeMvhd()},
	})
	if err != nil {
		logger.Debug("not an ISO BMFF container", "path", path, "error", err)
		return time.Time{}, false
	}

	for _, box := range boxes {
		mvhd, ok := box.Payload.(*mp4.Mvhd)
		if !ok {
			continue
		}

		creation := mvhd.GetCreationTime()
		if creation == 0 {
			continue
		}

		t := time.Unix(int64(creation)-appleEpochOffset, 0).UTC()
		if t.Year() < 1970 {
			// Cameras with an unset clock write epoch-adjacent garbage.
			continue
		}
		return normalizeDateOnly(t), true
	}

	return time.Time{}, false
}
