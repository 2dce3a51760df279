package core

// Camera is an imaging instrument mounted on a single rover.
type Camera struct {
	Calibrated         bool
	RoverID            RoverID
	CalibrationTargets Bitset // bit o set iff objective o is a valid calibration target
	ModesSupported     Bitset // bit m set iff mode m is supported
}
