package product

// DemoProducts returns the fixed sample catalog inserted on first run.
func DemoProducts() []Product {
	video := "https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4"
	return []Product{
		{
			ID:          "p1",
			Name:        "কাস্টম জার্সি",
			Price:       1200,
			Description: "<p>উচ্চ মানের কাস্টম জার্সি। যেকোনো ডিজাইন এবং নাম্বার প্রিন্ট করা যায়।</p><ul><li>১০০% পলিয়েস্টার</li><li>ড্রাই ফিট ম্যাটেরিয়াল</li><li>কাস্টম নাম এবং নাম্বার</li></ul>",
			Images: []string{
				"https://images.pexels.com/photos/114296/pexels-photo-114296.jpeg",
				"https://images.pexels.com/photos/1618932/pexels-photo-1618932.jpeg",
			},
			Video:    &video,
			Category: "জার্সি",
			Stock:    50,
			ExtraFields: map[string]string{
				"deliveryNote": "",
			},
			Addons: []Addon{
				{Name: "সামনে নাম্বার প্রিন্ট", Price: 100},
			},
		},
	}
}
