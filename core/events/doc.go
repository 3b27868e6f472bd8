// Package events defines the generation related events emitted on the event bus.
//
// Available event types:
//   - RequestEvent: new generation request accepted
//   - ScheduleFoundEvent: one schedule emitted with its rank and score
//   - DoneEvent: generation finished, with outcome
package events
