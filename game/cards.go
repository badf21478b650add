package game

// Default card sets. Prompt cards describe a petty slight suffered by the
// judge; response cards are the curses players offer in sympathy.

var DefaultPromptCards = []string{
	"Someone took the parking spot you were clearly waiting for.",
	"Your coworker microwaved fish in the office kitchen. Again.",
	"The group chat made plans without you and posted the photos.",
	"Someone replied-all to say 'please remove me from this list'.",
	"Your barista wrote a name on your cup that isn't even close.",
	"The person ahead of you paid for forty scratch tickets in coins.",
	"Your neighbor's dog only barks when you start a meeting.",
	"Someone spoiled the finale in a headline you couldn't unsee.",
	"The self-checkout accused you of an unexpected item. It was your bag.",
	"Your roommate finished the milk and put the carton back.",
	"A stranger corrected your pronunciation of your own name.",
	"The elevator doors closed while they watched you run for it.",
	"Someone recline-bombed you on a ninety-minute flight.",
	"Your landlord 'fixed' the heater by telling you to wear socks.",
	"The meeting that could have been an email ran long.",
	"Someone ate the lunch with your name written on it twice.",
	"Your phone autocorrected 'sounds good' into something unforgivable.",
	"The contractor said 'between eight and noon' and came at five.",
	"Someone let the door swing shut while you carried four boxes.",
	"Your teammate pushed to main on Friday at 4:58 PM.",
	"The waiter took your plate while your fork was in your hand.",
	"Someone used the last of the toilet paper and said nothing.",
	"Your dentist asked you a question with both hands in your mouth.",
	"The printer jammed only for you, only when it mattered.",
	"Someone walking slowly in front of you matched your every swerve.",
	"Your package was marked 'delivered' to a porch that isn't yours.",
	"The gym guy didn't wipe down the machine and made eye contact.",
	"Someone heated the office to a temperature only lizards enjoy.",
	"Your streaming service removed the show one episode from the end.",
	"A scooter rider yelled at you for standing on the sidewalk.",
}

var DefaultResponseCards = []string{
	"May your socks always be slightly damp.",
	"May every red light know your name.",
	"May your phone charger only work at one specific angle.",
	"May your ice cream always have freezer burn.",
	"May you forever feel like you forgot something at home.",
	"May your headphones tangle inside a sealed pocket.",
	"May every pen you borrow be out of ink.",
	"May your popcorn have unpopped kernels at the bottom forever.",
	"May your shopping cart always have the wobbly wheel.",
	"May your sneeze never fully arrive.",
	"May your pillow be warm on both sides.",
	"May your shoelaces untie only on escalators.",
	"May autocorrect change 'well' to 'we'll' for the rest of your days.",
	"May every show you love be cancelled on a cliffhanger.",
	"May your chip bag be two-thirds air, always.",
	"May you step in something wet while wearing only socks.",
	"May your alarm ring one hour early on your day off.",
	"May all your bananas go from green to brown overnight.",
	"May your glasses never be quite clean.",
	"May the song stuck in your head be one you hate.",
	"May your Wi-Fi drop exactly one bar whenever you hit play.",
	"May every avocado you open betray you.",
	"May your zipper catch the fabric every single time.",
	"May you always get the shopping bag with the broken handle.",
	"May your leftovers be stolen by someone who doesn't even enjoy them.",
	"May your umbrella flip inside out in front of your crush.",
	"May your keyboard develop one sticky key you use constantly.",
	"May every group photo catch you mid-blink.",
	"May your soup always be exactly too hot, then instantly too cold.",
	"May you hit every crack in the sidewalk with your rolling luggage.",
	"May your library book be due the day you reach the good part.",
	"May your car radio only pick up stations playing ads.",
	"May your fitted sheet pop off the corner every night at 3 AM.",
	"May every jar in your house be sealed by an angry god.",
	"May your phone slip between the car seat and the console eternally.",
	"May all your text messages send twice twice.",
	"May the elevator stop at every floor whenever you're late.",
	"May your toast land butter-side down on freshly mopped floors.",
	"May you always be one stamp short of the free coffee.",
	"May your hiccups return the moment you brag they're gone.",
}
