// Package services holds the business logic between the HTTP controllers
// and the repositories.
//
// Services defined in this package:
// - AuthService: login, signup, account recovery and token lifecycle
// - UserService: account listing, activation and address book
// - SchoolService: school registry
// - ScheduleService: visit schedule planning
// - MaterialService: educational material library
// - TravelTimeService: per-visit travel time records
package services
