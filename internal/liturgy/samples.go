package liturgy

import (
	"time"

	"github.com/jmcarver/missal/internal/model"
)

// Bundled offline fixtures. These are generic records, not data for any
// particular date: SampleReadings stamps today's date on a fixed set of
// readings, so callers must rely on the provenance tag rather than the
// date field to tell sample data from live data.

// SampleReadings returns the built-in sample Mass readings.
func SampleReadings() model.DailyReadings {
	now := time.Now()
	return model.DailyReadings{
		Date: model.FormatDate(now),
		FirstReading: &model.Reading{
			Reference: "Isaiah 61:1-2a, 10-11",
			Citation:  "Is 61:1-2a, 10-11",
			Text: "The spirit of the Lord GOD is upon me, because the LORD has anointed me; " +
				"he has sent me to bring glad tidings to the poor, to heal the brokenhearted, " +
				"to proclaim liberty to the captives and release to the prisoners, to announce " +
				"a year of favor from the LORD and a day of vindication by our God.\n\n" +
				"I rejoice heartily in the LORD, in my God is the joy of my soul; for he has " +
				"clothed me with a robe of salvation and wrapped me in a mantle of justice, " +
				"like a bridegroom adorned with a diadem, like a bride bedecked with her jewels.\n\n" +
				"As the earth brings forth its plants, and a garden makes its growth spring up, " +
				"so will the Lord GOD make justice and praise spring up before all the nations.",
			Source: "USCCB",
		},
		ResponsorialPsalm: &model.Psalm{
			Reference: "Luke 1:46-48, 49-50, 53-54",
			Refrain:   "My soul rejoices in my God.",
			Verses: []string{
				"My soul proclaims the greatness of the Lord; my spirit rejoices in God my Savior, " +
					"for he has looked upon his lowly servant.",
				"The Almighty has done great things for me, and holy is his Name. " +
					"He has mercy on those who fear him in every generation.",
				"He has filled the hungry with good things, and the rich he has sent away empty. " +
					"He has come to the help of his servant Israel for he has remembered his promise of mercy.",
			},
			Source: "USCCB",
		},
		GospelAcclamation: "Alleluia, alleluia. The Spirit of the Lord is upon me, " +
			"because he has anointed me to bring glad tidings to the poor. Alleluia, alleluia.",
		Gospel: &model.Reading{
			Reference: "Luke 4:16-21",
			Citation:  "Lk 4:16-21",
			Text: "Jesus came to Nazareth, where he had grown up, and went according to his " +
				"custom into the synagogue on the sabbath day. He stood up to read and was " +
				"handed a scroll of the prophet Isaiah. He unrolled the scroll and found the " +
				"passage where it was written:\n\n" +
				"The Spirit of the Lord is upon me, because he has anointed me to bring glad " +
				"tidings to the poor. He has sent me to proclaim liberty to captives and " +
				"recovery of sight to the blind, to let the oppressed go free, and to proclaim " +
				"a year acceptable to the Lord.\n\n" +
				"Rolling up the scroll, he handed it back to the attendant and sat down, and " +
				"the eyes of all in the synagogue looked intently at him. He said to them, " +
				"\"Today this Scripture passage is fulfilled in your hearing.\"",
			Source: "USCCB",
		},
		Source:      "USCCB",
		LastUpdated: now.Format(time.RFC3339),
	}
}

// SamplePrayers returns the built-in prayer set used when both the
// network and the cache come up empty.
func SamplePrayers() []model.Prayer {
	return []model.Prayer{
		{
			Name:     "Our Father",
			Category: model.CategoryCommon,
			Text: "Our Father, who art in heaven,\nhallowed be thy name.\nThy kingdom come,\n" +
				"thy will be done,\non earth as it is in heaven.\n\n" +
				"Give us this day our daily bread,\nand forgive us our trespasses,\n" +
				"as we forgive those who trespass against us.\n\n" +
				"And lead us not into temptation,\nbut deliver us from evil.\n\nAmen.",
			Source:   "Traditional Catholic Prayer",
			Language: "en",
		},
		{
			Name:     "Hail Mary",
			Category: model.CategoryMarian,
			Text: "Hail Mary, full of grace,\nthe Lord is with thee.\n" +
				"Blessed art thou amongst women,\nand blessed is the fruit of thy womb, Jesus.\n\n" +
				"Holy Mary, Mother of God,\npray for us sinners,\n" +
				"now and at the hour of our death.\n\nAmen.",
			Source:   "Traditional Catholic Prayer",
			Language: "en",
		},
		{
			Name:     "Glory Be",
			Category: model.CategoryCommon,
			Text: "Glory be to the Father,\nand to the Son,\nand to the Holy Spirit.\n\n" +
				"As it was in the beginning,\nis now, and ever shall be,\nworld without end.\n\nAmen.",
			Source:   "Traditional Catholic Prayer",
			Language: "en",
		},
		{
			Name:     "Act of Contrition",
			Category: model.CategoryPenitential,
			Text: "O my God, I am heartily sorry for having offended Thee,\n" +
				"and I detest all my sins because of thy just punishments,\n" +
				"but most of all because they offend Thee, my God,\n" +
				"who art all good and deserving of all my love.\n\n" +
				"I firmly resolve with the help of Thy grace\n" +
				"to sin no more and to avoid the near occasion of sin.\n\nAmen.",
			Source:   "Traditional Catholic Prayer",
			Language: "en",
		},
		{
			Name:     "Apostles' Creed",
			Category: model.CategoryCommon,
			Text: "I believe in God,\nthe Father almighty,\nCreator of heaven and earth,\n" +
				"and in Jesus Christ, his only Son, our Lord,\nwho was conceived by the Holy Spirit,\n" +
				"born of the Virgin Mary,\nsuffered under Pontius Pilate,\n" +
				"was crucified, died and was buried;\nhe descended into hell;\n" +
				"on the third day he rose again from the dead;\nhe ascended into heaven,\n" +
				"and is seated at the right hand of God the Father almighty;\n" +
				"from there he will come to judge the living and the dead.\n\n" +
				"I believe in the Holy Spirit,\nthe holy catholic Church,\n" +
				"the communion of saints,\nthe forgiveness of sins,\n" +
				"the resurrection of the body,\nand life everlasting.\n\nAmen.",
			Source:   "Traditional Catholic Prayer",
			Language: "en",
		},
	}
}
