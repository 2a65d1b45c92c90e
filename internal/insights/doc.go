// Package insights computes temporal correlations between logged
// triggers, symptoms, and mood.
//
// Four independent sub-analyses run over fully in-memory event logs:
//
//  1. Trigger impact: mood in the 24 hours after a trigger's last
//     occurrence, against the all-time baseline.
//  2. Symptom impact: mood on the calendar days a symptom type was
//     logged, against the same baseline.
//  3. Day-of-week pattern: per-weekday mood means, best and worst.
//  4. Symptom co-occurrence: pairs of distinct symptom types logged on
//     the same calendar day.
//
// Each analysis is side-effect-free and tolerates absent inputs by
// skipping its section rather than failing. Sparse data never produces
// output: fewer than five mood entries overall short-circuits the whole
// report, and each analysis carries its own minimum-sample gate.
// "Insufficient data" is a normal result state, not an error, and no
// computation ever divides by an empty collection.
package insights
