// Package coeffsimpl provides a reference CoefficientCloser: thermal
// synchrotron emission, rotation and Kirchhoff absorption, using the
// fitting-function closures standard in the GRRT literature (Leung, Gammie
// & Noble 2011; Dexter 2016; Shcherbakov 2008) that the original radiative
// transfer core this spec was distilled from itself depends on, reproduced
// here in Go rather than carried over verbatim.
package coeffsimpl

import (
	"math"

	"github.com/rittickrr/raptor"
)

// ThermalSynchrotron implements grpol.CoefficientCloser for a thermal
// (Maxwell-Juttner) electron distribution.
type ThermalSynchrotron struct{}

func (ThermalSynchrotron) cyclotronFreq(b float64) float64 {
	return grpol.ElectronCharge * b / (2 * math.Pi * grpol.ElectronMass * grpol.SpeedOfLight)
}

// characteristicFreq returns the thermal synchrotron characteristic
// frequency nu_s and the dimensionless ratio X = nu/nu_s.
func (t ThermalSynchrotron) characteristicFreq(thetaE, b, pitch, nuP float64) (nuS, x float64) {
	nuC := t.cyclotronFreq(b)
	sinPitch := math.Sin(pitch)
	if sinPitch < 1e-6 {
		sinPitch = 1e-6
	}
	nuS = (2.0 / 9.0) * nuC * thetaE * thetaE * sinPitch
	if nuS == 0 {
		return 0, math.Inf(1)
	}
	return nuS, nuP / nuS
}

func (ThermalSynchrotron) EmissionI(thetaE, nE, nuP, b, pitch float64) float64 {
	t := ThermalSynchrotron{}
	nuS, x := t.characteristicFreq(thetaE, b, pitch, nuP)
	if nuS == 0 || thetaE <= 0 {
		return 0
	}
	shape := 2.5651 * (1 + 1.92*math.Pow(x, -1.0/3.0) + 0.9977*math.Pow(x, -2.0/3.0)) *
		math.Exp(-1.8899*math.Pow(x, 1.0/3.0))
	k2 := besselK2(1 / thetaE)
	if k2 == 0 {
		return 0
	}
	return (nE * grpol.ElectronCharge * grpol.ElectronCharge * nuS) /
		(math.Sqrt(3) * grpol.SpeedOfLight * k2) * shape
}

func (ThermalSynchrotron) EmissionQ(thetaE, nE, nuP, b, pitch float64) float64 {
	t := ThermalSynchrotron{}
	nuS, x := t.characteristicFreq(thetaE, b, pitch, nuP)
	if nuS == 0 || thetaE <= 0 {
		return 0
	}
	shape := 2.5651 * (1 + 0.93193*math.Pow(x, -1.0/3.0) + 0.499873*math.Pow(x, -2.0/3.0)) *
		math.Exp(-1.8899*math.Pow(x, 1.0/3.0))
	k2 := besselK2(1 / thetaE)
	if k2 == 0 {
		return 0
	}
	return -(nE * grpol.ElectronCharge * grpol.ElectronCharge * nuS) /
		(math.Sqrt(3) * grpol.SpeedOfLight * k2) * shape
}

func (ThermalSynchrotron) EmissionV(thetaE, nE, nuP, b, pitch float64) float64 {
	t := ThermalSynchrotron{}
	nuS, x := t.characteristicFreq(thetaE, b, pitch, nuP)
	if nuS == 0 || thetaE <= 0 {
		return 0
	}
	shape := (1.81348/x + 3.42319*math.Pow(x, -2.0/3.0) + 0.0292545*math.Pow(x, -0.5) +
		2.03773*math.Pow(x, -1.0/3.0)) * math.Exp(-1.8899*math.Pow(x, 1.0/3.0))
	k2 := besselK2(1 / thetaE)
	if k2 == 0 {
		return 0
	}
	cosPitch := math.Cos(pitch)
	return -(nE * grpol.ElectronCharge * grpol.ElectronCharge * nuS) /
		(math.Sqrt(3) * grpol.SpeedOfLight * k2) * cosPitch / thetaE * shape
}

// faradayScale returns the common (omega_p^2 omega_B / (c omega^2)) prefactor
// shared by the Faraday rotation and conversion coefficients.
func (ThermalSynchrotron) faradayScale(nE, b, nuP float64) float64 {
	omegaP2 := 4 * math.Pi * nE * grpol.ElectronCharge * grpol.ElectronCharge / grpol.ElectronMass
	omegaB := grpol.ElectronCharge * b / (grpol.ElectronMass * grpol.SpeedOfLight)
	omega := 2 * math.Pi * nuP
	if omega == 0 {
		return 0
	}
	return omegaP2 * omegaB / (grpol.SpeedOfLight * omega * omega)
}

func (t ThermalSynchrotron) RhoQ(thetaE, nE, nuP, b, pitch float64) float64 {
	if thetaE <= 0 || nuP == 0 {
		return 0
	}
	scale := t.faradayScale(nE, b, nuP)
	sinPitch := math.Sin(pitch)
	k2 := besselK2(1 / thetaE)
	if k2 == 0 {
		return 0
	}
	omegaB := grpol.ElectronCharge * b / (grpol.ElectronMass * grpol.SpeedOfLight)
	return scale * omegaB * sinPitch * sinPitch * besselFraction(thetaE) / (2 * k2) / (2 * math.Pi)
}

func (t ThermalSynchrotron) RhoV(thetaE, nE, nuP, b, pitch float64) float64 {
	if thetaE <= 0 || nuP == 0 {
		return 0
	}
	scale := t.faradayScale(nE, b, nuP)
	cosPitch := math.Cos(pitch)
	k0 := besselK0(1 / thetaE)
	k2 := besselK2(1 / thetaE)
	if k2 == 0 {
		return 0
	}
	return scale * cosPitch * (k0 / k2)
}

// besselFraction approximates K1(1/Theta)/K2(1/Theta), the ratio that
// appears in the Faraday conversion coefficient's thermal average.
func besselFraction(thetaE float64) float64 {
	invTheta := 1 / thetaE
	k2 := besselK2(invTheta)
	if k2 == 0 {
		return 0
	}
	return besselK1(invTheta) / k2
}

// AbsorptionTH derives the absorption coefficient from an emission
// coefficient via Kirchhoff's law: a_nu = j_nu / B_nu(Theta_e), the thermal
// Planck source function evaluated at the plasma-frame frequency.
func (ThermalSynchrotron) AbsorptionTH(j, nuP, thetaE float64) float64 {
	if thetaE <= 0 || nuP == 0 {
		return 0
	}
	x := grpol.PlanckConstant * nuP / (grpol.ElectronMass * grpol.SpeedOfLight * grpol.SpeedOfLight * thetaE)
	if x <= 0 {
		return 0
	}
	denom := math.Expm1(x)
	if denom == 0 {
		return 0
	}
	bNu := (2 * grpol.PlanckConstant * nuP * nuP * nuP) / (grpol.SpeedOfLight * grpol.SpeedOfLight) / denom
	if bNu == 0 {
		return 0
	}
	return j / bNu
}
