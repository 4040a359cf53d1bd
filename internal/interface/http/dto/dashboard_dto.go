package dto

import "github.com/cyberlawyerhub/backend/internal/usecase/dashboard"

type UserDashboardResponse struct {
	Bookings      []BookingViewResponse `json:"bookings"`
	Recent        []BookingViewResponse `json:"recent"`
	TotalBookings int                   `json:"total_bookings"`
	Upcoming      int                   `json:"upcoming"`
	TotalSpent    int64                 `json:"total_spent"`
}

type LawyerDashboardResponse struct {
	Lawyer            LawyerResponse    `json:"lawyer"`
	Bookings          []BookingResponse `json:"bookings"`
	Slots             []SlotResponse    `json:"slots"`
	TotalBookings     int               `json:"total_bookings"`
	DistinctClients   int               `json:"distinct_clients"`
	TotalEarnings     int64             `json:"total_earnings"`
	ThisMonthEarnings int64             `json:"this_month_earnings"`
}

func ToUserDashboardResponse(d *dashboard.UserDashboard) UserDashboardResponse {
	return UserDashboardResponse{
		Bookings:      ToBookingViewResponses(d.Bookings),
		Recent:        ToBookingViewResponses(d.Recent),
		TotalBookings: d.TotalBookings,
		Upcoming:      d.Upcoming,
		TotalSpent:    d.TotalSpent,
	}
}

func ToLawyerDashboardResponse(d *dashboard.LawyerDashboard) LawyerDashboardResponse {
	return LawyerDashboardResponse{
		Lawyer:            ToLawyerResponse(d.Lawyer),
		Bookings:          ToBookingResponses(d.Bookings),
		Slots:             ToSlotResponses(d.Slots),
		TotalBookings:     d.TotalBookings,
		DistinctClients:   d.DistinctClients,
		TotalEarnings:     d.TotalEarnings,
		ThisMonthEarnings: d.ThisMonthEarnings,
	}
}
