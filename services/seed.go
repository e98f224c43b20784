package services

import (
	"context"
	"errors"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

// Initialize seeds the store on first run: the sample collection, today's
// schedule entry, zeroed counters and an empty subscriber list. Returns
// true when seeding actually happened; an already-populated store is left
// untouched.
func (r *PoemRepository) Initialize(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, store.CollectionKey)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return false, NewStorageError(err)
	}

	poems := samplePoems()
	now := r.now()
	for i := range poems {
		poems[i].ID = newPoemID()
		poems[i].DateAdded = now
		poems[i].IsActive = true
	}

	if err := r.saveCollection(ctx, poems); err != nil {
		return false, err
	}

	today := now.Format(DateLayout)
	if err := r.store.Set(ctx, store.DailyPoemKey(today), poems[0]); err != nil {
		return false, NewStorageError(err)
	}
	if err := r.store.Set(ctx, store.TotalViewsKey, 0); err != nil {
		return false, NewStorageError(err)
	}
	if err := r.store.Set(ctx, store.TotalSharesKey, 0); err != nil {
		return false, NewStorageError(err)
	}
	if err := r.store.Set(ctx, store.SubscribersKey, []models.Subscriber{}); err != nil {
		return false, NewStorageError(err)
	}
	return true, nil
}

func samplePoems() []models.Poem {
	return []models.Poem{
		{
			Urdu:    "دل میں چھپے ہوئے خوابوں کو\nآنکھوں میں سجانا آتا ہے\nہر غم کو خوشی میں بدلنا\nاردو شاعری کا جادو ہے",
			Hindi:   "दिल में छुपे हुए सपनों को\nआंखों में सजाना आता है\nहर गम को खुशी में बदलना\nहिंदी कविता का जादू है",
			English: "Hidden dreams within the heart,\nAdorn the eyes with gentle art.\nTurning sorrow into joy,\nIs poetry's timeless ploy.",
			Author: models.Author{
				Urdu:    "علامہ اقبال",
				Hindi:   "अल्लामा इक़बाल",
				English: "Allama Iqbal",
			},
			Category: "inspiration",
			Metadata: models.PoemMetadata{Theme: "hope", Difficulty: models.DifficultyMedium},
		},
		{
			Urdu:    "رات کی خاموشی میں\nستاروں سے باتیں کرتے ہیں\nدل کے راز چاند کو\nآہستہ آہستہ سناتے ہیں",
			Hindi:   "रात की खामोशी में\nसितारों से बातें करते हैं\nदिल के राज चांद को\nआहिस्ता आहिस्ता सुनाते हैं",
			English: "In the silence of the night,\nWe converse with stars so bright.\nTo the moon we softly tell,\nSecrets that within hearts dwell.",
			Author: models.Author{
				Urdu:    "میر تقی میر",
				Hindi:   "मीर तकी मीर",
				English: "Mir Taqi Mir",
			},
			Category: "romance",
			Metadata: models.PoemMetadata{Theme: "night", Difficulty: models.DifficultyEasy},
		},
		{
			Urdu:    "محبت کا درس سکھانے والے\nہر دل میں امید جگانے والے\nلفظوں کے جادوگر شاعر\nخوابوں کو حقیقت بنانے والے",
			Hindi:   "मोहब्बत का दर्स सिखाने वाले\nहर दिल में उम्मीद जगाने वाले\nशब्दों के जादूगर शायर\nख्वाबों को हकीकत बनाने वाले",
			English: "Teachers of love's sacred art,\nWho kindle hope in every heart.\nPoets, the wizards of the word,\nMake dreams reality, truth heard.",
			Author: models.Author{
				Urdu:    "احمد فراز",
				Hindi:   "अहमद फराज",
				English: "Ahmed Faraz",
			},
			Category: "wisdom",
			Metadata: models.PoemMetadata{Theme: "poetry", Difficulty: models.DifficultyMedium},
		},
		{
			Urdu:    "ہوا کے جھونکے سے پوچھا\nکیا تم نے دیکھا ہے محبت\nجواب ملا مسکراتے ہوئے\nہاں، پھولوں کی خوشبو میں",
			Hindi:   "हवा के झोंके से पूछा\nक्या तुमने देखा है मोहब्बत\nजवाब मिला मुस्कराते हुए\nहां, फूलों की खुशबू में",
			English: "Asked the breeze so light,\nHave you seen love's sight?\nWith a smile came the reply,\nYes, in flowers' fragrance high.",
			Author: models.Author{
				Urdu:    "جوش ملیح آبادی",
				Hindi:   "जोश मलीहाबादी",
				English: "Josh Malihabadi",
			},
			Category: "nature",
			Metadata: models.PoemMetadata{Theme: "nature", Difficulty: models.DifficultyEasy},
		},
		{
			Urdu:    "خدا کی محبت میں ڈوبا ہوا\nیہ دل ہے کہ ہر وقت مست رہتا ہے\nدنیا کی ہر چیز میں اُس کا جلوہ\nنظر آتا ہے، بس یہی رشتہ ہے",
			Hindi:   "खुदा की मोहब्बत में डूबा हुआ\nयह दिल है कि हर वक्त मस्त रहता है\nदुनिया की हर चीज में उसका जलवा\nनजर आता है, बस यही रिश्ता है",
			English: "Immersed in divine love's grace,\nThis heart stays in blissful space.\nIn everything, His light I see,\nThis bond eternal, strong and free.",
			Author: models.Author{
				Urdu:    "حالی",
				Hindi:   "हाली",
				English: "Hali",
			},
			Category: "spiritual",
			Metadata: models.PoemMetadata{Theme: "divine", Difficulty: models.DifficultyMedium},
		},
	}
}
