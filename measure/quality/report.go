package quality

// Report collects every metric for one original/reconstructed pair.
type Report struct {
	SNR     float64 // dB, power convention
	PSNR    float64 // dB, power convention, peak = max(signal)
	MSE     float64
	THD     float64 // THD of the reconstructed signal, linear ratio
	THDDiff float64 // dB, amplitude convention
}

// Evaluate computes all metrics for signal and reconstructed.
func Evaluate(signal, reconstructed []float64) (Report, error) {
	if err := validatePair(signal, reconstructed); err != nil {
		return Report{}, err
	}

	snr, err := SNR(signal, reconstructed)
	if err != nil {
		return Report{}, err
	}

	psnr, err := PSNR(signal, reconstructed)
	if err != nil {
		return Report{}, err
	}

	mse, err := MSE(signal, reconstructed)
	if err != nil {
		return Report{}, err
	}

	thd, err := THD(reconstructed)
	if err != nil {
		return Report{}, err
	}

	thdDiff, err := THDDiff(signal, reconstructed)
	if err != nil {
		return Report{}, err
	}

	return Report{
		SNR:     snr,
		PSNR:    psnr,
		MSE:     mse,
		THD:     thd,
		THDDiff: thdDiff,
	}, nil
}
