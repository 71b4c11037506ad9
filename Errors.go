package baltrj

import "errors"

//ErrInvalidParameters is returned when an input parameter is outside its
//documented domain
var ErrInvalidParameters = errors.New("baltrj: invalid parameters")

//ErrIntegrationFailure is returned when the ODE solver cannot satisfy
//its error control at some step
var ErrIntegrationFailure = errors.New("baltrj: integration failure")

//ErrNoApexFound is returned when vertical velocity never changes sign
//within the simulated duration; resubmitting with a longer duration is
//the appropriate response
var ErrNoApexFound = errors.New("baltrj: no apex found within the simulated duration")

//ErrNoImpactFound is returned when the projectile never returns to
//ground level within the simulated duration
var ErrNoImpactFound = errors.New("baltrj: no impact found within the simulated duration")

//ErrDegenerateFit is returned when the interpolation abscissas coincide,
//for example across the apex bracket of a purely vertical flight
var ErrDegenerateFit = errors.New("baltrj: degenerate interpolation fit")

//ErrInsufficientSamples is returned when the sampling interval is too
//coarse to form a 3-point bracket around an event
var ErrInsufficientSamples = errors.New("baltrj: insufficient samples to bracket the event")
