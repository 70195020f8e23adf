package bot

// User-facing texts. The bot speaks Uzbek (латин and кирилл mixed, matching
// the clinic's channel); the admin panel reply-keyboard labels below are
// functional — inbound panel presses are matched against them verbatim.

const (
	botDescription = "👋🏻 Хуш келибсиз!\n" +
		"Мен Шерзод Тойиров, сиз ёзган саволларга шахсан ўзим жавоб бераман.\n\n" +
		"Ундан олдин каналга аъзо бўлишингиз ШАРТ!\n\n" +
		"Муаммо ва савалларингизни матн, видео, расм, хужжат, МРТ шаклда юбориб батафсил ёзинг 👇🏻\n\n" +
		"Жавоб бироз кечикиши мумкин, лекин барча хабарларга албатта жавоб бераман😊"

	botShortDescription = "Шерзод Тойиров - тиббий консультация"

	welcomeText = "👋🏻 <b>Хуш келибсиз!</b>\n\n" +
		"Мен Шерзод Тойиров, сиз ёзган саволларга шахсан ўзим жавоб бераман.\n\n" +
		"📝 <b>Муаммо ва савалларингизни</b> матн, видео, расм, хужжат, МРТ шаклда юбориб батафсил ёзинг 👇🏻\n\n" +
		"⏱️ Жавоб бироз кечикиши мумкин, лекин барча хабарларга албатта жавоб бераман😊\n\n" +
		"📋 <b>Mavjud buyruqlar:</b>\n" +
		"/myquestions - Mening savollarim\n" +
		"/help - Yordam"

	allSubscribedText = "✅ <b>Барча платформаларга обуна бўлдингиз!</b>\n\n" + welcomeText

	doctorWelcomeText = "👨‍⚕️ <b>Assalomu alaykum, shifokor!</b>\n\n" +
		"Siz bemorlardan keladigan savollarni olasiz va ularga javob berishingiz mumkin.\n\n" +
		"📋 <b>Qanday ishlaydi:</b>\n" +
		"1. Bemor savol yuboradi\n" +
		"2. Sizga savol bilan xabar keladi\n" +
		"3. Xabarga javob (Reply) bering\n" +
		"4. Javob bemorga avtomatik yuboriladi\n\n" +
		"💡 <b>Maslahat:</b> Savol bilan kelgan xabarga javob bering - javob bemorga yuboriladi."

	helpText = "📖 <b>Botdan foydalanish bo'yicha yordam</b>\n\n" +
		"👋 <b>Savol qanday beriladi:</b>\n" +
		"Savolingizni botga matn, rasm, video yoki hujjat shaklida yuboring.\n\n" +
		"📋 <b>Mavjud buyruqlar:</b>\n" +
		"/start - Bot bilan ishlashni boshlash\n" +
		"/myquestions - Sizning savollaringizni ko'rish\n" +
		"/help - Bu yordam\n\n" +
		"⏱ <b>Qanday ishlaydi:</b>\n" +
		"1. Siz savol yuborasiz\n" +
		"2. Savol shifokorlarga yuboriladi\n" +
		"3. Shifokor sizning savolingizga javob beradi\n" +
		"4. Siz javobni botda olasiz\n\n" +
		"💡 <b>Maslahat:</b> Faqat matn emas, balki rasm, video yoki hujjatlarni ham yuborishingiz mumkin - bu muammoni batafsilroq tasvirlashga yordam beradi."

	emptyQuestionPrompt = "❓ Iltimos, savolingizni matn, rasm, video yoki hujjat shaklida yuboring."

	mediaPlaceholder = "Media-xabar"
)

// Subscription gate.
const (
	gateHeaderStart = "⚠️ <b>Ундан олдин куйидаги платформаларга аъзо бўлишингиз ШАРТ:</b>"
	gateHeaderBlock = "⚠️ <b>Ботдан фойдаланиш учун куйидаги платформаларга обуна бўлишингиз керак:</b>"
	gateFooter      = "Юқоридаги тугмаларни босиб обуна бўлинг ва тасдиқланг!"

	welcomeIntro = "👋🏻 <b>Хуш келибсиз!</b>\n\n" +
		"Мен Шерзод Тойиров, сиз ёзган саволларга шахсан ўзим жавоб бераман."

	platformTelegram  = "📢 Telegram канал"
	platformInstagram = "📷 Instagram"
	platformYouTube   = "📺 YouTube"

	btnTelegramJoin     = "📢 Telegram каналга обуна бўлиш"
	btnTelegramConfirm  = "✅ Telegram каналга обуна бўлдим"
	btnInstagramConfirm = "✅ Instagramга обуна бўлдим"
	btnYouTubeConfirm   = "✅ YouTubeга обуна бўлдим"

	cbGetInviteLink    = "get_invite_link"
	cbCheckTelegramSub = "check_telegram_sub"
	cbConfirmInstagram = "confirm_instagram"
	cbConfirmYouTube   = "confirm_youtube"

	inviteLinkText = "🔗 <b>Sizning maxsus havolangiz:</b>\n\n%s\n\n" +
		"📢 Ushbu havola orqali kanalga obuna bo'ling.\n" +
		"Obuna bo'lgach, <b>\"✅ Men obuna bo'ldim\"</b> tugmasini bosing."

	notSubscribedRetryText = "❌ <b>Obuna tekshiruvi</b>\n\n" +
		"Siz hali kanalga obuna bo'lmadingiz.\n\n" +
		"🔗 <b>Yangi maxsus havola:</b>\n\n%s\n\n" +
		"📢 Iltimos, ushbu havola orqali kanalga obuna bo'ling.\n" +
		"Obuna bo'lgach, <b>\"✅ Men obuna bo'ldim\"</b> tugmasini bosing."
)

// Q&A relay.
const (
	questionSavedNoDoctorsText = "⏳ <b>Shifokorlar hozircha mavjud emas</b>\n\n" +
		"📝 Savolingiz saqlandi (ID: <code>%d</code>)\n" +
		"Shifokor mavjud bo'lgach, sizga javob beradi.\n\n" +
		"💡 Savollaringiz holatini kuzatish uchun /myquestions buyrug'idan foydalaning."

	questionSentText = "✅ <b>Savolingiz shifokorlarga yuborildi!</b>\n\n" +
		"📝 Savol ID: <code>%d</code>\n" +
		"⏱ Shifokor sizga tez orada javob beradi.\n\n" +
		"💡 Savollaringiz holatini ko'rish uchun /myquestions buyrug'idan foydalaning."

	questionSaveFailedText = "⚠️ Savolni saqlashda xatolik yuz berdi. Iltimos, qayta urinib ko'ring."

	answerDeliveredText    = "✅ Javob bemorga yuborildi."
	answerDeliveryFailText = "❌ Javob yuborishda xatolik yuz berdi. Keyinroq urinib ko'ring."
	answerNoQuestionText   = "Savolni aniqlab bo'lmadi. Savol bilan xabarga javob bering."
	answerUnknownIDText    = "Savol topilmadi."
	answerSaveFailedText   = "⚠️ Javobni saqlashda xatolik yuz berdi. Qayta urinib ko'ring."

	noQuestionsText = "📭 Sizda hozircha savollar yo'q.\n\n" +
		"Savolingizni botga yuboring, shifokor sizga javob beradi."

	questionsListHeader = "📋 <b>Sizning savollaringiz:</b>\n\n"
	questionsListFooter = "\n(Oxirgi 10 ta savol ko'rsatilmoqda)"
)

// Admin panel.
const (
	btnAddDoctor      = "➕ Shifokor qo'shish"
	btnRemoveDoctor   = "➖ Shifokorni olib tashlash"
	btnListDoctors    = "📋 Shifokorlar ro'yxati"
	btnSearchChannel  = "🔍 Kanalda qidirish"
	btnChangePassword = "🔑 Parolni o'zgartirish"
	btnLogout         = "🚪 Chiqish"
	btnShareContact   = "📱 Kontaktni yuborish"

	adminPanelText = "🔐 <b>Admin panel</b>\n\nQuyidagi tugmalardan birini tanlang:"

	adminLoginPrompt    = "🔐 <b>Admin panel</b>\n\nKirish uchun loginni kiriting:"
	adminLoginAccepted  = "✅ Login qabul qilindi.\n\nEndi parolni kiriting:"
	adminLoginWrong     = "❌ Noto'g'ri login! Qayta urinib ko'ring.\n\nLoginni kiriting:"
	adminLoginNotText   = "❌ Iltimos, loginni matn shaklida kiriting."
	adminPasswordWrong  = "❌ Noto'g'ri parol! Qayta urinib ko'ring.\n\nParolni kiriting:"
	adminPasswordNoText = "❌ Iltimos, parolni matn shaklida kiriting."

	adminAddDoctorPrompt = "➕ <b>Shifokor qo'shish</b>\n\n" +
		"Quyidagi usullardan birini tanlang:\n\n" +
		"1️⃣ <b>Kontakt orqali (tavsiya etiladi):</b>\n" +
		"   Quyidagi tugmani bosing va shifokor o'z kontaktingizni yuborsin.\n" +
		"   Bu usul avtomatik ravishda user ID ni aniqlaydi.\n\n" +
		"2️⃣ <b>Username orqali:</b>\n" +
		"   Username ni yuboring (masalan: @username yoki username)\n" +
		"   Agar shifokor kanalda bo'lsa, uni topamiz.\n\n" +
		"3️⃣ <b>User ID orqali:</b>\n" +
		"   User ID ni yuboring (masalan: 123456789)\n\n" +
		"⚠️ <b>Eslatma:</b> Telegram Bot API telefon raqami orqali user ID ni aniqlash imkonini bermaydi.\n" +
		"Shuning uchun eng yaxshi usul - shifokor o'z kontaktingizni yuborishi."

	adminRemoveDoctorPrompt = "➖ <b>Shifokorni olib tashlash</b>\n\n" +
		"Olib tashlash uchun shifokor ID sini yuboring:\n\n" +
		"Format: <code>ID:123456789</code>\n\n" +
		"Yoki shunchaki ID raqamini yuboring."

	adminChangePasswordPrompt = "🔑 <b>Parolni o'zgartirish</b>\n\n" +
		"Yangi parolni yuboring:\n\n" +
		"Format: <code>parol:yangi_parol</code>\n\n" +
		"Yoki shunchaki yangi parolni yuboring."

	adminBadPhoneText = "❌ Noto'g'ri telefon raqami formati.\n\n" +
		"Iltimos, o'z kontaktingizni yuboring yoki telefon raqamini to'g'ri formatda kiriting:\n" +
		"Masalan: <code>+998901234567</code>"

	adminForeignContactText = "📱 Telefon raqami qabul qilindi: <code>%s</code>\n\n" +
		"⚠️ Bu kontakt sizning emas. User ID ni yuboring yoki shifokor o'z kontaktingizni yuborsin."

	adminPhoneNoLookupText = "📱 Telefon raqami qabul qilindi: <code>%s</code>\n\n" +
		"⚠️ <b>Muhim:</b> Telegram Bot API telefon raqami orqali user ID ni aniqlash imkonini bermaydi.\n\n" +
		"Shifokorni qo'shish uchun quyidagi usullardan birini tanlang:\n\n" +
		"1️⃣ <b>Kontakt orqali:</b> Quyidagi tugmani bosing va shifokor o'z kontaktingizni yuborsin\n" +
		"2️⃣ <b>Username orqali:</b> Username ni kiriting (masalan: @username)\n" +
		"3️⃣ <b>User ID orqali:</b> User ID ni kiriting (masalan: 123456789)\n\n" +
		"💡 <b>Maslahat:</b> Eng oson usul - shifokor o'z kontaktingizni yuborishi."

	adminUsernameNotFoundText = "❌ Foydalanuvchi <code>@%s</code> topilmadi.\n\n" +
		"Iltimos, quyidagilarni tekshiring:\n" +
		"• Username to'g'ri kiritilganligi\n" +
		"• Foydalanuvchi botga yozgan yoki o'z kontaktingizni yuborgan\n\n" +
		"Yoki boshqa usulni tanlang."

	adminUsernameNotUserText = "❌ <code>@%s</code> - bu kanal yoki guruh, foydalanuvchi emas.\n\n" +
		"Iltimos, shifokor username ni kiriting (masalan: @username)."

	adminNoIDText = "❌ User ID topilmadi.\n\n" +
		"Iltimos, quyidagi usullardan birini tanlang:\n\n" +
		"1️⃣ <b>Kontakt orqali (tavsiya etiladi):</b>\n" +
		"   Quyidagi tugmani bosing va shifokor o'z kontaktingizni yuborsin.\n" +
		"   Bu usul avtomatik ravishda user ID ni aniqlaydi.\n\n" +
		"2️⃣ <b>User ID orqali:</b>\n" +
		"   User ID ni kiriting (masalan: 123456789)\n\n" +
		"⚠️ <b>Eslatma:</b> Telegram Bot API telefon raqami orqali user ID ni aniqlash imkonini bermaydi.\n" +
		"Shuning uchun eng yaxshi usul - shifokor o'z kontaktingizni yuborishi."

	adminDoctorAddedText     = "✅ Shifokor qo'shildi!\n\n👤 ID: <code>%d</code>\n📝 Ism: %s\n🔗 Username: @%s"
	adminDoctorAddFailedText = "❌ Xatolik yuz berdi. Shifokor qo'shilmadi."

	adminRemoveBadFormatText   = "❌ Noto'g'ri format. ID raqamini yuboring."
	adminDoctorRemovedText     = "✅ Shifokor olib tashlandi!\n\n👤 ID: <code>%d</code>"
	adminDoctorNotFoundText    = "❌ Shifokor topilmadi yoki allaqachon olib tashlangan.\n\n👤 ID: <code>%d</code>"
	adminRemoveDoctorFailText  = "❌ Xatolik yuz berdi. Qayta urinib ko'ring."
	adminPasswordTooShortText  = "❌ Parol kamida 3 belgidan iborat bo'lishi kerak."
	adminPasswordChangedText   = "✅ Parol muvaffaqiyatli o'zgartirildi!\n\nYangi parol: <code>%s</code>"
	adminPasswordChangeFail    = "❌ Parolni o'zgartirishda xatolik yuz berdi."
	adminNoDoctorsText         = "📭 Hozircha shifokorlar yo'q."
	adminNoChannelText         = "❌ Kanal ID o'rnatilmagan."
	adminNoChannelAdminsText   = "📭 Kanadda administratorlar topilmadi."
	adminChannelSearchFailText = "❌ Xatolik yuz berdi: %s\n\nIltimos, bot kanalda administrator ekanligini tekshiring."

	adminLogoutText = "✅ Siz admin paneldan chiqdingiz.\n\n" +
		"💬 Bot yangilandi. Yangi suhbatni boshlash uchun /start buyrug'ini yuboring."

	deprecatedCommandText = "⚠️ Bu buyruq eskirgan. Iltimos, /admin buyrug'idan foydalaning."
	unknownCommandText    = "❓ Noma'lum buyruq. /help buyrug'idan foydalaning."
)
