package directory

import "time"

// SeedEmployees は保存済みデータが存在しない初回起動時に投入される
// 固定の 5 レコードを返します。
func SeedEmployees() []Employee {
	return []Employee{
		{
			ID:           "1",
			FullName:     "Rahul Sharma",
			Gender:       GenderMale,
			DateOfBirth:  date(1992, time.May, 15),
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			State:        "Maharashtra",
			Active:       true,
		},
		{
			ID:           "2",
			FullName:     "Priya Patel",
			Gender:       GenderFemale,
			DateOfBirth:  date(1988, time.November, 22),
			ProfileImage: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=150&h=150&fit=crop&crop=face",
			State:        "Gujarat",
			Active:       true,
		},
		{
			ID:           "3",
			FullName:     "Amit Kumar",
			Gender:       GenderMale,
			DateOfBirth:  date(1995, time.March, 8),
			ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			State:        "Delhi",
			Active:       false,
		},
		{
			ID:           "4",
			FullName:     "Sneha Reddy",
			Gender:       GenderFemale,
			DateOfBirth:  date(1990, time.July, 30),
			ProfileImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			State:        "Karnataka",
			Active:       true,
		},
		{
			ID:           "5",
			FullName:     "Vikram Singh",
			Gender:       GenderMale,
			DateOfBirth:  date(1985, time.December, 1),
			ProfileImage: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			State:        "Rajasthan",
			Active:       true,
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
